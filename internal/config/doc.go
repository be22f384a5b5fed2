// Package config manages user-level settings stored at ~/.upmgen/config.yaml.
// Besides plain get/set of keys it resolves the default author and package
// name offered to the generator when the user does not supply them.
package config
