//go:build !production

package environment

const production = false
