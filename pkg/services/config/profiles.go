package config

import (
	"context"
	"fmt"

	"github.com/databricks/databricks-sdk-go/config"
	"github.com/de-tools/factory-atlas/pkg/models/domain"
	"github.com/snowflakedb/gosnowflake"
	"gopkg.in/ini.v1"
)

// DatabricksProfile is a workspace configuration plus the SQL warehouse it
// queries.
type DatabricksProfile struct {
	*config.Config
	HTTPPath string
	Catalog  string
	Schema   string
}

// Registry reads warehouse profiles from an INI file. A section is a
// profile; its `type` key selects databricks (default) or snowflake.
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.ConfigProfile, error)
	GetDatabricksConfig(ctx context.Context, profile string) (*DatabricksProfile, error)
	GetSnowflakeConfig(ctx context.Context, profile string) (*gosnowflake.Config, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]domain.ConfigProfile, error) {
	var profiles []domain.ConfigProfile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, domain.ConfigProfile{
				Name: section.Name(),
				Type: profileType(section),
			})
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetDatabricksConfig(_ context.Context, profile string) (*DatabricksProfile, error) {
	section, err := cr.section(profile, domain.ProfileTypeDatabricks)
	if err != nil {
		return nil, err
	}

	host := section.Key("host").String()
	token := section.Key("token").String()
	httpPath := section.Key("http_path").String()
	if host == "" || token == "" || httpPath == "" {
		return nil, fmt.Errorf("profile %s: host, token and http_path are required", profile)
	}

	return &DatabricksProfile{
		Config: &config.Config{
			Host:  host,
			Token: token,
		},
		HTTPPath: httpPath,
		Catalog:  section.Key("catalog").String(),
		Schema:   section.Key("schema").String(),
	}, nil
}

func (cr *cfgRegistry) GetSnowflakeConfig(_ context.Context, profile string) (*gosnowflake.Config, error) {
	section, err := cr.section(profile, domain.ProfileTypeSnowflake)
	if err != nil {
		return nil, err
	}

	cfg := &gosnowflake.Config{
		Account:   section.Key("account").String(),
		User:      section.Key("user").String(),
		Password:  section.Key("password").String(),
		Database:  section.Key("database").String(),
		Schema:    section.Key("schema").String(),
		Warehouse: section.Key("warehouse").String(),
		Role:      section.Key("role").String(),
	}
	if cfg.Account == "" || cfg.User == "" {
		return nil, fmt.Errorf("profile %s: account and user are required", profile)
	}
	return cfg, nil
}

func (cr *cfgRegistry) section(profile string, want domain.ProfileType) (*ini.Section, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", profile)
	}
	if got := profileType(section); got != want {
		return nil, fmt.Errorf("profile %s is a %s profile, not %s", profile, got, want)
	}
	return section, nil
}

func profileType(section *ini.Section) domain.ProfileType {
	if section.Key("type").String() == string(domain.ProfileTypeSnowflake) {
		return domain.ProfileTypeSnowflake
	}
	return domain.ProfileTypeDatabricks
}
