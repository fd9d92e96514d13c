package model

import "time"

// Salesman is a row of business__salesmans. The password is never serialized.
type Salesman struct {
	SalesmanID    int64   `json:"business_salesman_id"`
	Name          string  `json:"business_salesmen_name"`
	Email         *string `json:"business_salesman_email"`
	ContactNumber *string `json:"business_salesmen_contact_number"`
	LoginID       string  `json:"business_salesman_login_id"`
	Password      string  `json:"-"`
}

// SalesmanOption is the id/name pair used by pickers.
type SalesmanOption struct {
	SalesmanID int64  `json:"business_salesman_id"`
	Name       string `json:"business_salesmen_name"`
}

// LoginInput is the login request body.
type LoginInput struct {
	LoginID  string `json:"business_salesman_login_id" validate:"required"`
	Password string `json:"business_salesman_login_password" validate:"required"`
}

// LoginResult is the authenticated salesman with a signed token.
type LoginResult struct {
	Salesman
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"token_expires_at"`
}

// Target is a row of business__salesmans_targets.
type Target struct {
	TargetID     int64      `json:"business_salesman_target_id"`
	SalesmanID   int64      `json:"business_salesman_id"`
	From         Date       `json:"business_salesman_target_from"`
	To           Date       `json:"business_salesman_target_to"`
	Amount       float64    `json:"business_salesman_target"`
	AssignedBy   *int64     `json:"target_assigned_by"`
	AssignedTime *time.Time `json:"target_assigned_datetime"`
}

// TargetReportRow is a target joined with its salesman.
type TargetReportRow struct {
	Target
	SalesmanName  *string `json:"business_salesmen_name"`
	ContactNumber *string `json:"business_salesmen_contact_number"`
	Email         *string `json:"business_salesman_email"`
}

// TargetInput creates a target, or updates it when TargetID is set.
type TargetInput struct {
	TargetID   *int64  `json:"business_salesman_target_id"`
	SalesmanID int64   `json:"business_salesman_id" validate:"required,gt=0"`
	From       string  `json:"business_salesman_target_from" validate:"required,datetime=2006-01-02"`
	To         string  `json:"business_salesman_target_to" validate:"required,datetime=2006-01-02"`
	Amount     float64 `json:"business_salesman_target" validate:"gte=0"`
}

// Followup is a row of business__salesmans_followups.
type Followup struct {
	FollowupID int64   `json:"business_salesman_followup_id"`
	SalesmanID int64   `json:"business_salesman_id"`
	BusinessID int64   `json:"business_id"`
	Type       string  `json:"business_salesman_followup_type"`
	Date       Date    `json:"business_salesman_followup_date"`
	Response   *string `json:"business_salesman_business_response"`
	Remark     *string `json:"business_salesman_followup_remark"`
}

// FollowupListItem is a followup with its salesman and business names.
type FollowupListItem struct {
	Followup
	SalesmanName *string `json:"business_salesmen_name"`
	BusinessName *string `json:"business_name"`
}

// FollowupReportRow is a followup with its salesman's contact details.
type FollowupReportRow struct {
	Followup
	SalesmanName  *string `json:"business_salesmen_name"`
	ContactNumber *string `json:"business_salesmen_contact_number"`
	Email         *string `json:"business_salesman_email"`
}

// FollowupInput creates a followup, or updates it when FollowupID is set.
type FollowupInput struct {
	FollowupID *int64  `json:"business_salesman_followup_id"`
	SalesmanID int64   `json:"business_salesman_id" validate:"required,gt=0"`
	BusinessID int64   `json:"business_id" validate:"required,gt=0"`
	Type       string  `json:"business_salesman_followup_type" validate:"required,oneof=Meet Call Visit Whatsapp Mail"`
	Date       string  `json:"business_salesman_followup_date" validate:"required,datetime=2006-01-02"`
	Response   *string `json:"business_salesman_business_response"`
	Remark     *string `json:"business_salesman_followup_remark"`
}

// FollowTypeChart counts followups per type.
type FollowTypeChart struct {
	Meet     int64 `json:"meet_count"`
	Call     int64 `json:"call_count"`
	Visit    int64 `json:"visit_count"`
	Whatsapp int64 `json:"whatsapp_count"`
	Email    int64 `json:"email_count"`
}

// PartRequest is a row of inventory__part_requests.
type PartRequest struct {
	RequestID   int64     `json:"inventory_part_request_id"`
	StoreID     int64     `json:"inventory_store_id"`
	SalesmanID  *int64    `json:"business_salesman_id"`
	PartName    string    `json:"request_part_name"`
	BrandName   *string   `json:"request_brand_name"`
	PartNumber  *string   `json:"request_part_number"`
	Qty         int       `json:"request_part_qty"`
	Note        *string   `json:"request_note"`
	MarketPrice *float64  `json:"request_part_market_price"`
	Supersedes  *string   `json:"request_supersedes"`
	Status      int       `json:"request_status"`
	RequestDate time.Time `json:"request_date"`
}

// PartInquiry is a part request with the requesting salesman's name.
type PartInquiry struct {
	PartRequest
	SalesmanName *string `json:"business_salesmen_name"`
}

// PartRequestInput creates a part request, or updates it when RequestID is set.
type PartRequestInput struct {
	RequestID   *int64   `json:"inventory_part_request_id"`
	PartName    string   `json:"request_part_name" validate:"required"`
	BrandName   *string  `json:"request_brand_name"`
	PartNumber  *string  `json:"request_part_number"`
	Qty         int      `json:"request_part_qty" validate:"gte=1"`
	Note        *string  `json:"request_note"`
	MarketPrice *float64 `json:"request_part_market_price" validate:"omitempty,gte=0"`
	Supersedes  *string  `json:"request_supersedes"`
}

// Privilege is a row of the privilege catalog.
type Privilege struct {
	PrivilegeID int64   `json:"salesman_privilage_id"`
	Name        string  `json:"salesman_privilege_name"`
	Description *string `json:"salesman_description"`
}

// PrivilegeInput creates a privilege, or updates it when PrivilegeID is set.
type PrivilegeInput struct {
	PrivilegeID *int64  `json:"salesman_privilage_id"`
	Name        string  `json:"salesman_privilege_name" validate:"required"`
	Description *string `json:"salesman_description"`
}

// PermissionsInput replaces a salesman's granted privileges.
type PermissionsInput struct {
	SalesmanID  int64   `json:"business_salesman_id" validate:"required,gt=0"`
	Permissions []int64 `json:"permissions" validate:"required,min=1,dive,gt=0"`
}
