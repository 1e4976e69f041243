package dto

// DraftLineResponse is one draft line with its derived value.
type DraftLineResponse struct {
	Vendor   string `json:"vendor"`
	Location string `json:"location"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Storage  string `json:"storage"`
	Colour   string `json:"colour"`
	IMEI     string `json:"imei"`
	Qty      string `json:"qty"`
	Rate     string `json:"rate"`
	Value    string `json:"po_value"`
}

// DraftResponse is the order being composed.
type DraftResponse struct {
	PODate            string              `json:"po_date"`
	PurchaseOffice    string              `json:"purchase_office"`
	Offices           []string            `json:"offices"`
	Lines             []DraftLineResponse `json:"items"`
	TotalQuantity     int                 `json:"total_quantity"`
	TotalValue        string              `json:"total_value"`
	TotalValueDisplay string              `json:"total_value_display"`
}

// DraftHeaderRequest sets the order date (YYYY-MM-DD) and purchase office.
type DraftHeaderRequest struct {
	PODate         string `json:"po_date" binding:"required"`
	PurchaseOffice string `json:"purchase_office" binding:"required"`
}

// LineUpdateRequest sets one field of one line.
type LineUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}
