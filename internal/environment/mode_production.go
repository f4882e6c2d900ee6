//go:build production

package environment

const production = true
