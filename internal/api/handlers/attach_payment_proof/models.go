package attach_payment_proof

// AttachProofRequest HTTP request model
type AttachProofRequest struct {
	PaymentProof string `json:"paymentProof"`
}
