package model

// Notification is a transient, human-readable payment outcome. It is only
// ever published, never persisted.
type Notification struct {
	CustomerID int32  `json:"customer_id"`
	InvoiceID  int32  `json:"invoice_id"`
	Text       string `json:"text"`
}
