package repo

import (
	"fmt"
	"strings"
)

// Name is a value object representing a repository name
type Name struct {
	value string
}

// NewName creates a new Name with validation
func NewName(name string) (Name, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return Name{}, fmt.Errorf("repository name cannot be empty")
	}

	if len(name) > 100 {
		return Name{}, fmt.Errorf("repository name too long (max 100 characters)")
	}

	if strings.Contains(name, "/") {
		return Name{}, fmt.Errorf("repository name cannot contain '/'")
	}

	return Name{value: name}, nil
}

func (n Name) String() string {
	return n.value
}

func (n Name) Equals(other Name) bool {
	return n.value == other.value
}

// Organization is a value object representing the account whose repositories are listed
type Organization struct {
	value string
}

// NewOrganization creates a new Organization with validation
func NewOrganization(org string) (Organization, error) {
	org = strings.TrimSpace(org)

	if org == "" {
		return Organization{}, fmt.Errorf("organization cannot be empty")
	}

	if len(org) > 39 {
		return Organization{}, fmt.Errorf("organization too long (max 39 characters)")
	}

	return Organization{value: org}, nil
}

func (o Organization) String() string {
	return o.value
}
