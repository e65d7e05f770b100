package constants

// Payment method values stored on a contract row. These mirror the
// extraction engine's classifier output.
const (
	PaymentOneTime   = "one_time_charge"
	PaymentRecurring = "recurring"
	PaymentTermin    = "termin"
	PaymentUnknown   = "unknown"
)

var PaymentMethods = []string{PaymentOneTime, PaymentRecurring, PaymentTermin, PaymentUnknown}

// Confidence grades attached to classified fields.
const (
	ConfidenceHigh   = "HIGH"
	ConfidenceMedium = "MEDIUM"
	ConfidenceLow    = "LOW"
)

var Confidences = []string{ConfidenceHigh, ConfidenceMedium, ConfidenceLow}
