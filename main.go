package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wordler/engine"
	"wordler/experiments"
	"wordler/game"
	"wordler/solver"
	"wordler/vocab"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "openings":
		err = runOpenings(os.Args[2:])
	case "simulate":
		err = runSimulate(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: wordler <command> [flags]

commands:
  openings   rank every vocabulary word as an opening guess and export CSV
  simulate   play every answer from a file and store campaign records`)
}

// runOpenings performs the full-vocabulary ranking pass and exports it.
// This is the expensive computation the opening cache exists to avoid, so
// it honors a timeout and still writes whatever was scored in time.
func runOpenings(args []string) error {
	fs := flag.NewFlagSet("openings", flag.ExitOnError)
	wordsPath := fs.String("words", "", "word list file (default: embedded list or $WORDLER_WORDS_FILE)")
	weightsPath := fs.String("weights", "", "optional word,weight CSV")
	out := fs.String("out", "opening_guesses.csv", "output CSV path")
	goroutines := fs.Int("goroutines", runtime.NumCPU(), "ranking workers")
	timeout := fs.Duration("timeout", 0, "optional deadline; partial rankings are still written")
	if err := fs.Parse(args); err != nil {
		return err
	}

	words, weights, err := loadInputs(*wordsPath, *weightsPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	log.Info().Int("words", len(words)).Int("goroutines", *goroutines).Msg("ranking opening guesses")
	start := time.Now()
	ranker := solver.New(*goroutines, solver.WithCache(solver.NewCache()))
	ranked, _, err := ranker.RankGuesses(ctx, words, words, weights, game.Initial())
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if err != nil {
		log.Warn().Int("scored", len(ranked)).Msg("deadline hit, exporting partial ranking")
	}

	if err := solver.WriteRanking(*out, ranked); err != nil {
		return err
	}
	log.Info().
		Str("out", *out).
		Int("ranked", len(ranked)).
		Dur("took", time.Since(start)).
		Msg("exported opening ranking")
	return nil
}

func runSimulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	wordsPath := fs.String("words", "", "word list file (default: embedded list or $WORDLER_WORDS_FILE)")
	weightsPath := fs.String("weights", "", "optional word,weight CSV")
	answersPath := fs.String("answers", "", "answers file, one word per game (default: the word list)")
	openingPath := fs.String("opening", "", "optional precomputed opening ranking CSV")
	mode := fs.String("mode", "both", "normal, hard or both")
	goroutines := fs.Int("goroutines", runtime.NumCPU(), "ranking workers")
	rounds := fs.Int("rounds", engine.DefaultMaxRounds, "round budget per game")
	sample := fs.Int("sample", 0, "play only a random subset of the answers")
	seed := fs.Uint64("seed", 0, "sampling seed (0 = clock)")
	name := fs.String("name", "simulation", "campaign name")
	outDir := fs.String("out", "experiments", "records directory ('' to skip)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	words, weights, err := loadInputs(*wordsPath, *weightsPath)
	if err != nil {
		return err
	}

	answers := words
	if *answersPath != "" {
		answers, err = vocab.Load(*answersPath)
		if err != nil {
			return err
		}
	}

	var opening []solver.ScoredGuess
	if *openingPath != "" {
		opening, err = solver.ReadRanking(*openingPath)
		if err != nil {
			return err
		}
		log.Info().Str("file", *openingPath).Int("entries", len(opening)).Msg("loaded opening ranking")
	}

	var modes []engine.Mode
	switch *mode {
	case "normal":
		modes = []engine.Mode{engine.ModeNormal}
	case "hard":
		modes = []engine.Mode{engine.ModeHard}
	case "both":
		modes = []engine.Mode{engine.ModeNormal, engine.ModeHard}
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}

	_, err = experiments.Run(context.Background(), experiments.Campaign{
		Name:       *name,
		Vocabulary: words,
		Answers:    answers,
		Weights:    weights,
		Opening:    opening,
		Modes:      modes,
		Goroutines: *goroutines,
		MaxRounds:  *rounds,
		Sample:     *sample,
		Seed:       *seed,
		OutDir:     *outDir,
	})
	return err
}

// loadInputs loads the vocabulary and optional weight table shared by both
// commands.
func loadInputs(wordsPath, weightsPath string) ([]game.Word, solver.Weights, error) {
	var words []game.Word
	var err error
	if wordsPath != "" {
		words, err = vocab.Load(wordsPath)
	} else {
		words, err = vocab.LoadDefault()
	}
	if err != nil {
		return nil, nil, err
	}

	if weightsPath == "" {
		return words, nil, nil
	}
	table, err := vocab.LoadWeights(weightsPath)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Int("weighted_words", table.Len()).Msg("loaded weight table")
	return words, table, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
