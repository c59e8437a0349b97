package config

type yamlConfig struct {
	Recipedeck struct {
		API struct {
			BaseURL      string `yaml:"base_url"`
			Timeout      string `yaml:"timeout"`
			ListSelector string `yaml:"list_selector"`
		} `yaml:"api"`

		Identity struct {
			UserID string `yaml:"user_id"`
		} `yaml:"identity"`

		Log struct {
			Dir   string `yaml:"dir"`
			Debug *bool  `yaml:"debug"`
		} `yaml:"log"`
	} `yaml:"recipedeck"`
}
