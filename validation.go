package eventlog

import (
	stderrs "errors"
	"reflect"
	"strings"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

// configValidator reports failures under the yaml key names (log_path,
// log_format_extension) rather than the Go field names.
var configValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return emptyString
		}
		return name
	})
	return v
})

func validateConfig(cfg *Config) error {
	const op errors.Op = "eventlog.validateConfig"
	if cfg == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	err := configValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrs.As(err, &fieldErrs) {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}
	return errors.New(op).Err(err).Msg(errMsgConfigInvalid + " " + strings.Join(fields, ", "))
}
