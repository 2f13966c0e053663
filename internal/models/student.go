package models

// Student describes an enrolled student. ParentID and Username are weak
// references: they name related user accounts without owning their lifecycle.
type Student struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Age       int    `json:"age"`
	ParentID  string `json:"parentId"`
	Username  string `json:"username,omitempty"`
	CreatedAt string `json:"createdAt"`
}
