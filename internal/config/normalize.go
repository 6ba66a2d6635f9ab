package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeIGDB()
	c.normalizeImages()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.TokenCache) == "" {
		c.Paths.TokenCache = defaultTokenCache
	}
	if c.Paths.TokenCache, err = expandPath(c.Paths.TokenCache); err != nil {
		return fmt.Errorf("paths.token_cache: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeIGDB() {
	c.IGDB.ClientID = strings.TrimSpace(c.IGDB.ClientID)
	c.IGDB.ClientSecret = strings.TrimSpace(c.IGDB.ClientSecret)
	if c.IGDB.ClientID == "" {
		c.IGDB.ClientID = strings.TrimSpace(os.Getenv("IGDB_CLIENT_ID"))
	}
	if c.IGDB.ClientSecret == "" {
		c.IGDB.ClientSecret = strings.TrimSpace(os.Getenv("IGDB_CLIENT_SECRET"))
	}
	if strings.TrimSpace(c.IGDB.APIURL) == "" {
		c.IGDB.APIURL = defaultAPIURL
	}
	if strings.TrimSpace(c.IGDB.AuthURL) == "" {
		c.IGDB.AuthURL = defaultAuthURL
	}
	if c.IGDB.SearchLimit <= 0 {
		c.IGDB.SearchLimit = defaultSearchLimit
	}
}

func (c *Config) normalizeImages() {
	if strings.TrimSpace(c.Images.SourceToken) == "" {
		c.Images.SourceToken = defaultSourceToken
	}
	if strings.TrimSpace(c.Images.CoverToken) == "" {
		c.Images.CoverToken = defaultCoverToken
	}
	if strings.TrimSpace(c.Images.LogoToken) == "" {
		c.Images.LogoToken = defaultLogoToken
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
