package dto

type CreatePaymentRequest struct {
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	Method            string  `json:"method"`
	ExternalReference string  `json:"external_reference"`
	PaymentProofURL   string  `json:"payment_proof_url"`
	Notes             string  `json:"notes"`
}

type VerifyPaymentRequest struct {
	TransactionID string `json:"transaction_id"`
}

type RejectPaymentRequest struct {
	Reason string `json:"reason"`
}

type RefundPaymentRequest struct {
	Reason string `json:"reason"`
}
