package club

// ClubStore defines the interface for club, court and staff storage.
type ClubStore interface {
	Create(c *Club) error
	Get(clubID string) (*Club, error)
	GetAll() ([]*Club, error)

	AddCourt(c *Court) error
	GetCourt(courtID string) (*Court, error)
	GetCourts(clubID string) ([]*Court, error)

	AddStaff(clubID, playerID, role string) error
	RemoveStaff(clubID, playerID string) error
	GetStaff(clubID string) ([]StaffMember, error)
	IsStaff(clubID, playerID string) bool
}
