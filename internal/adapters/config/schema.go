package config

// configFile represents the structure of the webassets.yaml file.
type configFile struct {
	RootDir string               `yaml:"rootdir"`
	Freeze  string               `yaml:"freeze"`
	Modules map[string]moduleDTO `yaml:"modules"`
	Remote  remoteDTO            `yaml:"remote"`
	Serve   serveDTO             `yaml:"serve"`
}

// moduleDTO declares one directory-backed asset module.
type moduleDTO struct {
	Dir      string `yaml:"dir"`
	Strategy string `yaml:"strategy"`
}

// remoteDTO points at a peer store.
type remoteDTO struct {
	URL string `yaml:"url"`
}

// serveDTO configures the HTTP boundary.
type serveDTO struct {
	Addr   string `yaml:"addr"`
	Prefix string `yaml:"prefix"`
}
