package main

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"market-feed-streamer/internal/exchange/upstox"
)

var authorizeCommand = &cli.Command{
	Name:   "authorize",
	Usage:  "检查访问令牌能否获取推送地址",
	Action: runAuthorize,
}

func runAuthorize(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	logger := newLogger(cfg.App.LogLevel)
	defer logger.Sync()

	authorizer := upstox.NewAuthorizer(cfg.Upstox.AuthorizeURL, cfg.AuthorizeTimeout(), logger)
	session, err := authorizer.Authorize(c.Context, cfg.Upstox.AccessToken)
	if err != nil {
		logger.Error("授权失败", zap.Error(err))
		return cli.Exit(err, 1)
	}

	host := ""
	if u, err := url.Parse(session.URI); err == nil {
		host = u.Host
	}
	fmt.Fprintf(c.App.Writer, "授权成功，推送地址: %s\n", host)
	return nil
}
