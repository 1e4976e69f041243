package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/procurement-console/internal/domain/errors"
	"github.com/polkiloo/procurement-console/internal/domain/model"
)

var itemIndexPattern = regexp.MustCompile(`Items\[(\d+)\]`)

var wireFieldNames = map[string]string{
	"Date":     "po_date",
	"Office":   "purchase_office",
	"Items":    "items",
	"SlNo":     "sl_no",
	"Vendor":   "vendor",
	"Location": "location",
	"Brand":    "brand",
	"Model":    "model",
	"Qty":      "qty",
	"Rate":     "rate",
}

// OrderValidator checks a submission before it reaches the gateway.
type OrderValidator struct {
	validate *validator.Validate
}

// NewOrderValidator configures validator with the order-specific rules.
func NewOrderValidator() (*OrderValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	if err := v.RegisterValidation("office", func(fl validator.FieldLevel) bool {
		return model.Office(fl.Field().String()).Valid()
	}); err != nil {
		return nil, fmt.Errorf("register office validation: %w", err)
	}
	return &OrderValidator{validate: v}, nil
}

// ValidateDraft builds the submission for d and validates it. Quantities
// that cannot be represented are reported against the raw input, since
// coercion would otherwise change them silently.
func (o *OrderValidator) ValidateDraft(d model.Draft) (model.NewOrder, error) {
	submission := BuildNewOrder(d)

	var problems []domainErrors.FieldProblem
	if err := o.Validate(submission); err != nil {
		var vErr *domainErrors.ValidationError
		if !errors.As(err, &vErr) {
			return submission, err
		}
		problems = append(problems, vErr.Problems...)
	}
	for i, line := range d.Lines {
		if _, ok := clampQty(parseAmount(line.Qty)); !ok {
			problems = append(problems, domainErrors.FieldProblem{
				Line:    i + 1,
				Field:   wireName("Qty"),
				Message: fmt.Sprintf("must be between -%d and %d", MaxQuantity, MaxQuantity),
			})
		}
	}
	if len(problems) > 0 {
		return submission, &domainErrors.ValidationError{Problems: problems}
	}
	return submission, nil
}

// Validate returns *ValidationError listing every problem, or nil.
func (o *OrderValidator) Validate(order model.NewOrder) error {
	err := o.validate.Struct(order)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	problems := make([]domainErrors.FieldProblem, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, domainErrors.FieldProblem{
			Line:    lineOf(fe.Namespace()),
			Field:   wireName(fe.StructField()),
			Message: describe(fe),
		})
	}
	return &domainErrors.ValidationError{Problems: problems}
}

func lineOf(namespace string) int {
	m := itemIndexPattern.FindStringSubmatch(namespace)
	if m == nil {
		return 0
	}
	idx, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return idx + 1
}

func wireName(field string) string {
	if name, ok := wireFieldNames[field]; ok {
		return name
	}
	return field
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "needs at least one line"
	case "office":
		return "is not a known office"
	case "gte":
		if fe.StructField() == "Rate" {
			return "must not be negative"
		}
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}
