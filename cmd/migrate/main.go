package main

import (
	"hoteldash/config"
	"hoteldash/helper"
	"hoteldash/shared/logger"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration command (up/down/drop/step-up/version/force <n>) is required")
	}

	cfg := config.Get()

	var err error

	switch os.Args[1] {
	case helper.ActionUp:
		err = helper.Up(cfg)
	case helper.ActionDown:
		err = helper.Down(cfg)
	case helper.ActionDrop:
		err = helper.Drop(cfg)
	case helper.ActionStepUp:
		err = helper.StepUp(cfg)
	case helper.ActionVersion:
		err = helper.Version(cfg)
	case helper.ActionForce:
		if len(os.Args) <= argLength {
			log.Fatal().Msg("force requires a version number")
		}

		version, convErr := strconv.Atoi(os.Args[2])
		if convErr != nil {
			log.Fatal().Err(convErr).Msg("force version must be a number")
		}

		err = helper.Force(cfg, version)
	default:
		log.Fatal().Str("command", os.Args[1]).Msg("Invalid command. Use up, down, drop, step-up, version or force <n>")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
