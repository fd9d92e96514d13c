package model

// CrossPart is a row of inventory__stock_cross.
type CrossPart struct {
	LinkID          int64   `json:"inventory_stock_oe_link_id"`
	PartNumber      string  `json:"part_number"`
	SupID           *int64  `json:"part_sup_id"`
	CrossPartNumber *string `json:"cross_part_number"`
	CrossBrandName  *string `json:"cross_brand_name"`
}

// Supplier is an active brand from SUPPLIERS.
type Supplier struct {
	SupID     int64   `json:"SUP_ID"`
	SupBrand  string  `json:"SUP_BRAND"`
	SupLogo   *string `json:"SUP_LOGO_NAME"`
	SupStatus int     `json:"SUP_STATUS"`
}
