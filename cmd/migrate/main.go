package main

import (
	"cinema/config"
	"cinema/helper"
	"cinema/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down/step-up/drop/version) is required")
	}

	cfg := config.Get()

	action := helper.Action(os.Args[1])

	switch action {
	case helper.ActionUp, helper.ActionDown, helper.ActionStepUp, helper.ActionDrop, helper.ActionVersion:
		if err := helper.Runner(cfg, action); err != nil {
			log.Fatal().Err(err).Str("action", string(action)).Msg("Migration failed")
		}
	default:
		log.Fatal().Str("action", string(action)).Msg("Invalid direction. Use 'up', 'down', 'drop', 'step-up' or 'version'")
	}
}
