// Package settings defines application-level configuration data.
package settings

// KeyMapConfig defines the configuration for keybindings.
// Each value is a comma-separated list of key names.
type KeyMapConfig struct {
	Up          string `yaml:"up" toml:"up" kong:"help='Previous entry keys',default='k,up'"`
	Down        string `yaml:"down" toml:"down" kong:"help='Next entry keys',default='j,down'"`
	Top         string `yaml:"top" toml:"top" kong:"help='First entry key',default='g'"`
	Bottom      string `yaml:"bottom" toml:"bottom" kong:"help='Last entry key',default='G'"`
	UpPage      string `yaml:"up_page" toml:"up_page" kong:"help='Page up keys',default='ctrl+u,pgup'"`
	DownPage    string `yaml:"down_page" toml:"down_page" kong:"help='Page down keys',default='ctrl+d,pgdown'"`
	Enter       string `yaml:"enter" toml:"enter" kong:"help='Expand or open key',default='enter'"`
	Toggle      string `yaml:"toggle" toml:"toggle" kong:"help='Toggle expand key',default='space'"`
	Open        string `yaml:"open" toml:"open" kong:"help='Open in browser key',default='o'"`
	CollapseAll string `yaml:"collapse_all" toml:"collapse_all" kong:"help='Collapse all key',default='x'"`
	Refresh     string `yaml:"refresh" toml:"refresh" kong:"help='Refresh key',default='r'"`
	Quit        string `yaml:"quit" toml:"quit" kong:"help='Quit keys',default='q,esc'"`
}

// Settings represents the application configuration.
type Settings struct {
	APIURL  string       `yaml:"api_url" toml:"api_url" kong:"name='api-url',help='API base URL',env='POTLUCK_API_URL',default='https://potluck-xl.vercel.app'"`
	FeedURL string       `yaml:"feed_url" toml:"feed_url" kong:"name='feed-url',help='Read an RSS/Atom feed directly instead of the API'"`
	Limit   int          `yaml:"limit" toml:"limit" kong:"short='l',help='Number of articles to fetch per page',default='50'"`
	Debug   bool         `yaml:"debug" toml:"debug" kong:"short='d',help='Enable debug logging'"`
	LogFile string       `yaml:"log_file" toml:"log_file" kong:"name='log-file',help='Debug log path',default='ptlk-debug.log'"`
	KeyMap  KeyMapConfig `yaml:"keymap" toml:"keymap" kong:"embed,prefix='keymap.'"`
}
