package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/procurement-console/internal/domain/model"
	"github.com/polkiloo/procurement-console/internal/server/http/dto"
	"github.com/polkiloo/procurement-console/internal/usecase"
)

// lineIndex reads the zero-based :index path parameter.
func lineIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, false
	}
	return index, true
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			SlNo:     item.SlNo,
			Vendor:   item.Vendor,
			Location: item.Location,
			Brand:    item.Brand,
			Model:    item.Model,
			Storage:  item.Storage,
			Colour:   item.Colour,
			IMEI:     item.IMEI,
			Qty:      item.Qty,
			Rate:     item.Rate.StringFixed(2),
			POValue:  item.Value.StringFixed(2),
		})
	}
	return dto.OrderResponse{
		PONumber:          order.Number,
		PODate:            order.Date,
		PurchaseOffice:    string(order.Office),
		CreatedByName:     order.CreatedByName,
		TotalQuantity:     order.TotalQuantity,
		TotalValue:        order.TotalValue.StringFixed(2),
		TotalValueDisplay: usecase.FormatCurrency(order.TotalValue),
		ApprovalStatus:    string(order.Status),
		Badge:             string(order.Status.Badge()),
		Items:             items,
	}
}

func toDraftResponse(view usecase.DraftView) dto.DraftResponse {
	lines := make([]dto.DraftLineResponse, 0, len(view.Draft.Lines))
	for i, line := range view.Draft.Lines {
		lines = append(lines, dto.DraftLineResponse{
			Vendor:   line.Vendor,
			Location: line.Location,
			Brand:    line.Brand,
			Model:    line.Model,
			Storage:  line.Storage,
			Colour:   line.Colour,
			IMEI:     line.IMEI,
			Qty:      line.Qty,
			Rate:     line.Rate,
			Value:    view.Values[i].StringFixed(2),
		})
	}
	offices := make([]string, 0, len(model.Offices()))
	for _, o := range model.Offices() {
		offices = append(offices, string(o))
	}
	return dto.DraftResponse{
		PODate:            view.Draft.Date.Format("2006-01-02"),
		PurchaseOffice:    string(view.Draft.Office),
		Offices:           offices,
		Lines:             lines,
		TotalQuantity:     view.Totals.Quantity,
		TotalValue:        view.Totals.Value.StringFixed(2),
		TotalValueDisplay: usecase.FormatCurrency(view.Totals.Value),
	}
}

func toReviewResponse(state usecase.ReviewState) dto.ReviewResponse {
	resp := dto.ReviewResponse{Open: state.Open, RejectionReason: state.Reason}
	if state.Order != nil {
		order := toOrderResponse(*state.Order)
		resp.Order = &order
	}
	return resp
}
