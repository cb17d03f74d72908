package gme_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGme(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Erosion Derivation Suite")
}
