package logging

import (
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is the environment variable that sets the default log level.
// BINPARSER_LOG_<pkg> overrides the level of a single package.
const EnvPrefix = "BINPARSER_LOG"

// PkgLevel represents log level of a package.
type PkgLevel struct {
	pkg string
	lvl byte
	al  zap.AtomicLevel
}

// Package returns package name.
func (pl PkgLevel) Package() string {
	return pl.pkg
}

// Level returns log level.
func (pl PkgLevel) Level() byte {
	return pl.lvl
}

// Enabled determines whether a zap level would be logged.
func (pl PkgLevel) Enabled(lvl zapcore.Level) bool {
	return pl.al.Enabled(lvl)
}

// SetLevel assigns log level.
func (pl *PkgLevel) SetLevel(input string) {
	if len(input) == 0 {
		pl.lvl = 'I'
		pl.al.SetLevel(zap.InfoLevel)
		return
	}

	switch input[0] {
	case 'V', 'D':
		pl.al.SetLevel(zap.DebugLevel)
	case 'I':
		pl.al.SetLevel(zap.InfoLevel)
	case 'W':
		pl.al.SetLevel(zap.WarnLevel)
	case 'E':
		pl.al.SetLevel(zap.ErrorLevel)
	case 'F', 'N':
		pl.al.SetLevel(zap.DPanicLevel)
	default:
		pl.lvl = 'I'
		pl.al.SetLevel(zap.InfoLevel)
		return
	}
	pl.lvl = input[0]
}

var pkgLevels = map[string]*PkgLevel{}

// ListLevels returns all package levels, sorted by package name.
func ListLevels() (list []PkgLevel) {
	for _, pl := range pkgLevels {
		list = append(list, *pl)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].pkg < list[j].pkg })
	return list
}

// FindLevel returns package log level object.
func FindLevel(pkg string) (pl *PkgLevel) {
	return pkgLevels[pkg]
}

// GetLevel finds or creates package log level object.
func GetLevel(pkg string) (pl *PkgLevel) {
	pl = pkgLevels[pkg]
	if pl == nil {
		pl = &PkgLevel{
			pkg: pkg,
			al:  zap.NewAtomicLevel(),
		}
		pl.SetLevel(envLevel(pkg))
		pkgLevels[pkg] = pl
	}
	return pl
}

func envLevel(pkg string) string {
	v, ok := os.LookupEnv(EnvPrefix + "_" + pkg)
	if !ok {
		v = os.Getenv(EnvPrefix)
	}
	return v
}
