package log

type Action = string

const (
	RegisterAuthor   Action = "RegisterAuthor"
	ChangeAuthorInfo        = "ChangeAuthorInfo"
	GetAuthorBooks          = "GetAuthorBooks"
	AddBook                 = "AddBook"
	UpdateBook              = "UpdateBook"
)
