package api

import (
	"log"
	"math/rand"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeidalz13/naval-battle/db/sqlc"
	"github.com/saeidalz13/naval-battle/internal"
	cerr "github.com/saeidalz13/naval-battle/internal/error"
	mb "github.com/saeidalz13/naval-battle/models/battleship"
	mc "github.com/saeidalz13/naval-battle/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	Route = "GET /battleship"
)

var (
	defaultPort = "8000"
	upgrader    = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// a 6x6 board view fits easily
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

// Server plays one game per websocket connection: the client is the
// human side and the server fires back at random.
type Server struct {
	port        string
	stage       string
	seed        int64
	fleetConfig mb.FleetConfig
	querier     sqlc.Querier
	GameManager mb.GameManager

	rngMu sync.Mutex
	rng   *rand.Rand
}

type Option func(*Server) error

func NewServer(optFuncs ...Option) *Server {
	server := Server{
		stage:       StageDev,
		fleetConfig: mb.DefaultFleetConfig(),
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}
	if server.port == "" {
		server.port = defaultPort
	}

	server.rng = internal.NewRand(server.seed)
	server.GameManager = mb.NewBattleshipGameManager()

	return &server
}

func WithPort(port string) Option {
	return func(s *Server) error {
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return cerr.ErrInvalidStage(stage)
		}
		s.stage = stage
		return nil
	}
}

// WithSeed makes every game of the server reproducible. 0 means time based.
func WithSeed(seed int64) Option {
	return func(s *Server) error {
		s.seed = seed
		return nil
	}
}

// WithQuerier enables analytics. Without it nothing is recorded.
func WithQuerier(q sqlc.Querier) Option {
	return func(s *Server) error {
		s.querier = q
		return nil
	}
}

func (s *Server) Addr() string {
	return "0.0.0.0:" + s.port
}

func (s *Server) Stage() string {
	return s.stage
}

func (s *Server) Routes(mux *http.ServeMux) {
	mux.Handle(Route, s)
}

// Each session gets its own generator since rand.Rand is not safe for
// concurrent use.
func (s *Server) newSessionRand() *rand.Rand {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return rand.New(rand.NewSource(s.rng.Int63()))
}

func getServerIpNet(localAddr string) (net.IPNet, error) {
	host, _, err := net.SplitHostPort(localAddr)
	if err != nil {
		log.Println("failed to extract host from local addr")
		return net.IPNet{}, err
	}

	return net.IPNet{
		IP:   net.ParseIP(host),
		Mask: net.CIDRMask(32, 32),
	}, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error
		log.Println(err)
		return
	}

	session := mc.NewSession(internal.NewSessionId(), conn)
	log.Printf("a new connection established\tsession: %s\tremote addr: %s\n", session.Id(), conn.RemoteAddr().String())

	serverIpNet, err := getServerIpNet(conn.LocalAddr().String())
	if err != nil {
		log.Println(err)
	}

	s.runSession(session, sqlc.NewDbManager(s.querier, serverIpNet).Analytics)
}
