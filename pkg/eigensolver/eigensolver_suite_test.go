package eigensolver_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEigensolver(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Eigensolver Suite")
}
