package entity

type Tab struct {
	BaseSimple
	Name string `db:"name"`
	Type string `db:"type"`
}

// Attachment belongs to the tab whose name equals Type.
type Attachment struct {
	BaseSimple
	Type string `db:"type"`
	URL  string `db:"url"`
}

type Subscriber struct {
	BaseSimple
	Email          string `db:"email"`
	IsUnsubscribed bool   `db:"is_unsubscribed"`
}
