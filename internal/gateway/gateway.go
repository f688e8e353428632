package gateway

// EventKind is the closed set of checkout outcomes this service acts on.
// Anything else the provider sends maps to EventIgnored and is acknowledged
// without touching inventory.
type EventKind int

const (
	EventIgnored EventKind = iota
	EventCompleted
	EventExpired
	EventFailed
)

func (k EventKind) String() string {
	switch k {
	case EventCompleted:
		return "completed"
	case EventExpired:
		return "expired"
	case EventFailed:
		return "failed"
	default:
		return "ignored"
	}
}

// SessionInput describes the single line item of a checkout session.
type SessionInput struct {
	ProductName   string
	Description   string
	AmountCents   int64
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// CheckoutSession is the redirectable handle returned by the provider.
type CheckoutSession struct {
	ID  string
	URL string
}

// Event is a verified provider notification about a checkout session.
// CustomerName/CustomerEmail come from the provider's own verified customer
// details, never from client-supplied form data.
type Event struct {
	Kind          EventKind
	RawType       string
	SessionID     string
	Metadata      map[string]string
	CustomerName  string
	CustomerEmail string
	AmountCents   int64
}

// PaymentGateway is the only integration point with the payment provider.
type PaymentGateway interface {
	CreateSession(in SessionInput) (CheckoutSession, error)
	// VerifyEvent authenticates the raw webhook payload against the signature
	// header before parsing. Fails closed.
	VerifyEvent(payload []byte, sigHeader string) (Event, error)
}
