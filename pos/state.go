package pos

// State is the lifecycle position of a cart. A cart starts Empty, moves to
// Building once it has a line, and walks the payment states during checkout.
type State string

const (
	StateEmpty           State = "EMPTY"
	StateBuilding        State = "BUILDING"
	StateAwaitingPayment State = "AWAITING_PAYMENT"
	StateProcessing      State = "PROCESSING"
	StateCompleted       State = "COMPLETED"
	StateCancelled       State = "CANCELLED"
)

func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateCancelled
}

func (s State) String() string {
	return string(s)
}
