package server

import (
	"bytes"
	stderrors "errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/console-chess-go/internal/config"
	"github.com/lgbarn/console-chess-go/internal/engine"
	"github.com/lgbarn/console-chess-go/internal/errors"
	"github.com/lgbarn/console-chess-go/internal/output"
)

// Server is the HTTP game service.
type Server struct {
	cfg   *config.Config
	games *Manager
	app   *fiber.App
}

// New builds the service and its routes.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:   cfg,
		games: NewManager(cfg.Server.MaxGames),
		app:   fiber.New(fiber.Config{DisableStartupMessage: true}),
	}

	s.app.Use(recover.New())
	s.app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	api := s.app.Group("/api")
	games := api.Group("/games")
	games.Post("/", s.createGame)
	games.Get("/", s.listGames)
	games.Get("/:id", s.getGame)
	games.Delete("/:id", s.deleteGame)
	games.Post("/:id/moves", s.playMove)
	games.Get("/:id/board.svg", s.boardSVG)
	games.Get("/:id/board.txt", s.boardText)

	s.app.Use("/ws", s.requireUpgrade)
	s.app.Get("/ws/games/:id", websocket.New(s.handleSocket, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))
	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Games returns the game manager.
func (s *Server) Games() *Manager {
	return s.games
}

// Listen serves on the configured address until the app is shut down.
func (s *Server) Listen() error {
	s.cfg.Logf(1, "listening on %s", s.cfg.Server.ListenAddr)
	return s.app.Listen(s.cfg.Server.ListenAddr)
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

type createRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	Move      string `json:"move"`
	Promotion string `json:"promotion"`
}

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return s.fail(c, fiber.StatusBadRequest, err)
		}
	}

	start := engine.NewPosition()
	if strings.TrimSpace(req.FEN) != "" {
		p, err := engine.NewPositionFromFEN(req.FEN)
		if err != nil {
			return s.fail(c, fiber.StatusBadRequest, err)
		}
		start = p
	}

	game, err := s.games.Create(start)
	if err != nil {
		return s.fail(c, statusOf(err), err)
	}
	s.cfg.Logf(2, "game %s created", game.ID)
	return c.Status(fiber.StatusCreated).JSON(game.State())
}

func (s *Server) listGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"games": s.games.IDs()})
}

func (s *Server) getGame(c *fiber.Ctx) error {
	game, err := s.games.Get(c.Params("id"))
	if err != nil {
		return s.fail(c, statusOf(err), err)
	}
	return c.JSON(game.State())
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if !s.games.Delete(c.Params("id")) {
		return s.fail(c, fiber.StatusNotFound, errors.ErrGameNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) playMove(c *fiber.Ctx) error {
	game, err := s.games.Get(c.Params("id"))
	if err != nil {
		return s.fail(c, statusOf(err), err)
	}
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return s.fail(c, fiber.StatusBadRequest, err)
	}

	state, err := game.Play(req.Move, req.Promotion)
	if err != nil {
		return s.fail(c, statusOf(err), err)
	}
	s.cfg.Logf(2, "game %s: %s", game.ID, req.Move)
	return c.JSON(state)
}

func (s *Server) boardSVG(c *fiber.Ctx) error {
	game, err := s.games.Get(c.Params("id"))
	if err != nil {
		return s.fail(c, statusOf(err), err)
	}
	p := game.Position()
	var buf bytes.Buffer
	if err := output.WriteSVG(&buf, &p.Board, output.SVGOptionsFor(&p, s.cfg.Display.SVGSquareSize)); err != nil {
		return s.fail(c, fiber.StatusInternalServerError, err)
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(buf.Bytes())
}

func (s *Server) boardText(c *fiber.Ctx) error {
	game, err := s.games.Get(c.Params("id"))
	if err != nil {
		return s.fail(c, statusOf(err), err)
	}
	p := game.Position()
	var buf bytes.Buffer
	if err := output.WriteText(&buf, &p, s.cfg.Display); err != nil {
		return s.fail(c, fiber.StatusInternalServerError, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Send(buf.Bytes())
}

func (s *Server) fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(errorBody(err))
}

// errorBody names the rejection code for moves the rules refused.
func errorBody(err error) ErrorBody {
	body := ErrorBody{Error: err.Error()}
	var moveErr *errors.MoveError
	if stderrors.As(err, &moveErr) && statusOf(err) == fiber.StatusUnprocessableEntity {
		body.Code = engine.CodeOf(err).String()
	}
	return body
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrGameOver):
		return fiber.StatusConflict
	case stderrors.Is(err, errors.ErrGameLimit):
		return fiber.StatusServiceUnavailable
	case stderrors.Is(err, errors.ErrInvalidPromotion), stderrors.Is(err, errors.ErrPromotionRequired):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusUnprocessableEntity
	}
}
