package eventlog

import (
	"os"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Service binds a validated Config to the sink for a host process. It holds no
// file handles and no buffers: every Log call is an independent append.
type Service struct {
	Config *Config `di.inject:"eventlogconfig"`
	// Diagnostics receives one event per failed append. Nil means silent.
	Diagnostics *zerolog.Logger `di.inject:"logger"`

	cfg           atomic.Pointer[Config]
	diag          atomic.Pointer[zerolog.Logger]
	isInitialized atomic.Bool
}

// NewService returns a Service for cfg. Initialize must still be called.
func NewService(cfg Config) *Service {
	return &Service{Config: &cfg}
}

// Initialize validates the configuration and creates the log directory. Calling it
// again re-reads Config.
func (s *Service) Initialize() error {
	const op errors.Op = "eventlog.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}
	if s.Config == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	cfg := *s.Config
	if err := validateConfig(&cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	if err := os.MkdirAll(cfg.LogPath, dirPerm); err != nil {
		return errors.New(op).Err(err).Msg(errMsgCreateDir)
	}

	diag := s.Diagnostics
	if diag == nil {
		nop := zerolog.Nop()
		diag = &nop
	}

	s.cfg.Store(&cfg)
	s.diag.Store(diag)
	s.isInitialized.Store(true)
	return nil
}

// Close marks the service unusable. It is safe to call more than once.
func (s *Service) Close() error {
	if s == nil {
		return nil
	}
	s.isInitialized.Store(false)
	return nil
}

// Log serializes r and appends it to its distinction's file.
func (s *Service) Log(r Record) error {
	const op errors.Op = "eventlog.Service.Log"
	if isNilRecord(r) {
		return errors.New(op).Msg(errMsgNilRecord)
	}
	return s.LogLine(Serialize(r), r.Distinction())
}

// LogLine appends an already serialized line to the file of d.
func (s *Service) LogLine(line string, d LogDistinction) error {
	const op errors.Op = "eventlog.Service.LogLine"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}
	cfg := s.cfg.Load()
	if !s.isInitialized.Load() || cfg == nil {
		return errors.New(op).Msg(errMsgNotInitialized)
	}

	if err := Append(line, d, *cfg); err != nil {
		path := emptyString
		if d.Valid() {
			path = FilePath(d, *cfg)
		}
		reportFailure(s.diag.Load(), err, d, path)
		return err
	}
	return nil
}

// Path returns the file the service writes records of d to, or "" before
// Initialize.
func (s *Service) Path(d LogDistinction) string {
	if s == nil {
		return emptyString
	}
	cfg := s.cfg.Load()
	if cfg == nil {
		return emptyString
	}
	return FilePath(d, *cfg)
}
