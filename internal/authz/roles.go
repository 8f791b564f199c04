package authz

const (
	RoleUser   = "user"
	RoleAuthor = "author"
	RoleAdmin  = "admin"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAuthor, RoleAdmin:
		return true
	}
	return false
}

func IsAdmin(role string) bool {
	return role == RoleAdmin
}

// CanWriteBlogs — создавать/редактировать посты могут только авторы и админы.
func CanWriteBlogs(role string) bool {
	return role == RoleAuthor || role == RoleAdmin
}
