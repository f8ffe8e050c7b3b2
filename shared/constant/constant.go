package constant

const (
	// SqliteUniqueViolation is the prefix sqlite reports for primary key and
	// unique constraint conflicts.
	SqliteUniqueViolation = "UNIQUE constraint failed"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelBoardScopeName      = "board"

	OtelQueryAttributeKey = "query"
)

const (
	Empty = ""
)
