package domain

import "fmt"

type ProfileType string

const (
	ProfileTypeDatabricks ProfileType = "databricks"
	ProfileTypeSnowflake  ProfileType = "snowflake"
)

// ConfigProfile is a named set of warehouse credentials.
type ConfigProfile struct {
	Name string
	Type ProfileType
}

func (c ConfigProfile) String() string {
	return fmt.Sprintf("%s:%s", c.Type, c.Name)
}
