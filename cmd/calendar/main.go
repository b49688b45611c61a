package main

import (
	"context"
	"fmt"
	"os"
	"roomcal/config"
	"roomcal/di"
	"roomcal/internal/domains/calendar/model/dto"
	"roomcal/shared"
	"roomcal/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
	maxYear   = 9999
)

const usage = `usage:
  calendar month <year> <month> [room...]
  calendar day <YYYY-MM-DD>
  calendar ics <year> <month>`

func main() {
	if len(os.Args) < argLength {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	svc := di.InitializeCalendar()
	ctx := context.Background()

	switch os.Args[1] {
	case "month":
		year, month := yearMonth(os.Args[2:])

		req := dto.MonthRequest{Year: year, Month: month}
		if len(os.Args) > 4 {
			req.Rooms = os.Args[4:]
		}

		grid, err := svc.Month(ctx, req)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to build month")
		}

		fmt.Print(RenderMonth(grid))
	case "day":
		if len(os.Args) < 3 {
			log.Fatal().Msg(usage)
		}

		detail, err := svc.Day(ctx, os.Args[2])
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to build day detail")
		}

		fmt.Print(RenderDetail(detail))
	case "ics":
		year, month := yearMonth(os.Args[2:])

		file, err := svc.ICS(ctx, year, month)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to export month")
		}

		fmt.Print(file.Content)
	default:
		log.Fatal().Msg("Invalid command. Use 'month', 'day' or 'ics'")
	}
}

func yearMonth(args []string) (int, int) {
	if len(args) < 2 {
		log.Fatal().Msg(usage)
	}

	year, ok := shared.ParseIntInRange(args[0], 1, maxYear)
	if !ok {
		log.Fatal().Str("year", args[0]).Msg("Invalid year")
	}

	month, ok := shared.ParseIntInRange(args[1], 1, 12)
	if !ok {
		log.Fatal().Str("month", args[1]).Msg("Invalid month, expected 1-12")
	}

	return year, month
}
