package cmd

import (
	"github.com/df07/go-rtw-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("rtw")

func setupLogging(ctx *cli.Context) {
	log.SetLevel(log.Verbosity(ctx.GlobalBool("v"), ctx.GlobalBool("vv")))
}
