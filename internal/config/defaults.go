package config

const (
	defaultAPIURL      = "https://api.igdb.com/v4/games"
	defaultAuthURL     = "https://id.twitch.tv/oauth2/token"
	defaultSearchLimit = 15
	defaultTokenCache  = "~/.config/gamedex/igdb_token.json"
	defaultSourceToken = "thumb"
	defaultCoverToken  = "cover_big"
	defaultLogoToken   = "logo_med"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		IGDB: IGDB{
			APIURL:      defaultAPIURL,
			AuthURL:     defaultAuthURL,
			SearchLimit: defaultSearchLimit,
		},
		Paths: Paths{
			TokenCache: defaultTokenCache,
		},
		Images: Images{
			SourceToken: defaultSourceToken,
			CoverToken:  defaultCoverToken,
			LogoToken:   defaultLogoToken,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
