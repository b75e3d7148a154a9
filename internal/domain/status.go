package domain

// SaleStatus — текущий статус продажи.
type SaleStatus string

const (
	SaleActive    SaleStatus = "Active"
	SaleInactive  SaleStatus = "Inactive"
	SaleSuspended SaleStatus = "Suspended"
)

// CustomerStatus — текущий статус покупателя в системе.
type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "Active"
	CustomerInactive  CustomerStatus = "Inactive"
	CustomerSuspended CustomerStatus = "Suspended"
	CustomerBlocked   CustomerStatus = "Blocked"
)
