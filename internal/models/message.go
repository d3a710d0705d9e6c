package models

// Sender identifies the author of an incoming message. Id is the
// platform identity and the user key; Name is the current display name.
type Sender struct {
	Id   string
	Name string
}

// Message is one incoming chat message
type Message struct {
	Sender   Sender
	Contents string
}

// Response is one outgoing reply, plain text only
type Response struct {
	Contents string
}

// Command is a recognized bot command
type Command int

const (
	ListAvailableItems Command = iota
	GetCurrentStats
)

// Action is the classified intent of a message. Exactly one of the
// concrete types below is produced per message; a nil Action means the
// message matched nothing.
type Action interface {
	isAction()
}

// CommandAction is a query command such as /list or /stats
type CommandAction struct {
	Command Command
}

// ProductAction is a purchase of a known catalog product
type ProductAction struct {
	Product Product
}

// AmountAction is a free-form signed amount
type AmountAction struct {
	Amount Rappen
}

func (CommandAction) isAction() {}
func (ProductAction) isAction() {}
func (AmountAction) isAction()  {}
