package user

// User is a staff member or customer account visible in the admin panel.
type User struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Role      Role
	Status    UserStatus
	JoinDate  string
	LastLogin string
}

// Role determines what the account may see in the panel.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
	RoleUser  Role = "user"
)

// UserStatus marks whether the account can sign in.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)
