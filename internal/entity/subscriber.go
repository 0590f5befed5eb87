package entity

// Subscriber is anything that wants to hear about a published news title.
type Subscriber interface {
	Notify(title string)
}
