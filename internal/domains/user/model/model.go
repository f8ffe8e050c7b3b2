package model

const (
	TableName  = "Users"
	EntityName = "user"

	FieldUserID   = "user_id"
	FieldUserName = "user_name"
	FieldLogin    = "user_login"
	FieldPassword = "user_password"
)

// User mirrors one row of the Users table. The login column holds a
// deterministic digest of the login string so rows can be looked up without
// storing the login itself; the password column holds a bcrypt hash.
type User struct {
	UserID   int64  `db:"user_id" insert:"false"`
	UserName string `db:"user_name"`
	Login    string `db:"user_login"`
	Password string `db:"user_password"`
}
