package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/saeidalz13/naval-battle/api"
	"github.com/saeidalz13/naval-battle/db"
	"github.com/saeidalz13/naval-battle/db/sqlc"
	"github.com/saeidalz13/naval-battle/internal"
	"github.com/saeidalz13/naval-battle/internal/console"
	mb "github.com/saeidalz13/naval-battle/models/battleship"
)

func main() {
	loadEnv()

	if len(os.Args) < 2 {
		usage()
		return
	}
	switch os.Args[1] {
	case "play":
		cmdPlay()
	case "serve":
		cmdServe()
	default:
		usage()
	}
}

func usage() {
	fmt.Println(`Naval battle

Commands:
  play   [--seed N]             play against the computer in the terminal
  serve  [--port P] [--seed N]  serve games over websocket on GET /battleship

Environment (read from .env unless STAGE=prod):
  STAGE         dev | prod
  PORT          listen port for serve
  SEED          random seed, 0 picks one from the clock
  DATABASE_URL  optional postgres url for analytics`)
}

// .env is optional in dev; in prod the environment is set by the platform.
func loadEnv() {
	if os.Getenv("STAGE") == api.StageProd {
		return
	}
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		panic(err)
	}
}

func envSeed() int64 {
	seedEnv := os.Getenv("SEED")
	if seedEnv == "" {
		return 0
	}
	seed, err := strconv.ParseInt(seedEnv, 10, 64)
	if err != nil {
		panic(err)
	}
	return seed
}

func cmdPlay() {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	seed := fs.Int64("seed", envSeed(), "random seed, 0 picks one from the clock")
	_ = fs.Parse(os.Args[2:])

	if _, err := console.Play(internal.NewRand(*seed), mb.DefaultFleetConfig(), os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func cmdServe() {
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = api.StageDev
	}

	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.String("port", os.Getenv("PORT"), "listen port")
	seed := fs.Int64("seed", envSeed(), "random seed, 0 picks one from the clock")
	_ = fs.Parse(os.Args[2:])

	opts := []api.Option{api.WithStage(stage), api.WithSeed(*seed)}
	if *port != "" {
		opts = append(opts, api.WithPort(*port))
	}

	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		conn := db.MustConnectToDb(psqlUrl, db.DefaultMigrationDir)
		defer conn.Close()
		opts = append(opts, api.WithQuerier(sqlc.New(conn)))
		log.Println("analytics enabled")
	}

	server := api.NewServer(opts...)
	mux := http.NewServeMux()
	server.Routes(mux)

	log.Printf("Listening on %s (stage: %s)\n", server.Addr(), server.Stage())
	if err := http.ListenAndServe(server.Addr(), mux); err != nil {
		log.Fatalln(err)
	}
}
