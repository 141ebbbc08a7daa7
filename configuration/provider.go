package configuration

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/spf13/pflag"
)

// lowerPosflag implements a pflag command line provider.
type lowerPosflag struct {
	delim   string
	flagset *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a command line flags provider that returns a
// nested map[string]interface{} where the nesting hierarchy of keys is
// defined by delim.
//
// It takes a Koanf instance to see if the flags defined have been set from
// other providers, for instance a config file. If they are not, the default
// values of the flags are merged. If they do exist, only the values that have
// been explicitly set in the command line are merged.
func lowerPosflagProvider(f *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagset: f,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	mp := make(map[string]interface{})
	p.flagset.VisitAll(func(f *pflag.Flag) {
		// If no value was explicitly set in the command line,
		// check if the default value should be used.
		if !f.Changed {
			if p.ko != nil {
				if p.ko.Exists(strings.ToLower(f.Name)) {
					return
				}
			} else {
				return
			}
		}

		var v interface{}
		switch f.Value.Type() {
		case "int":
			i, _ := p.flagset.GetInt(f.Name)
			v = int64(i)
		case "int64":
			i, _ := p.flagset.GetInt64(f.Name)
			v = i
		case "uint":
			i, _ := p.flagset.GetUint(f.Name)
			v = uint64(i)
		case "bool":
			v, _ = p.flagset.GetBool(f.Name)
		case "stringSlice":
			v, _ = p.flagset.GetStringSlice(f.Name)
		default:
			v = f.Value.String()
		}

		mp[strings.ToLower(f.Name)] = v
	})

	return maps.Unflatten(mp, p.delim), nil
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, errors.New("pflag provider does not support this method")
}

// Watch is not supported by the pflag provider.
func (p *lowerPosflag) Watch(cb func(event interface{}, err error)) error {
	return errors.New("pflag provider does not support this method")
}
