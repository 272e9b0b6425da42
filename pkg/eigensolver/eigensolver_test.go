package eigensolver_test

import (
	"errors"
	"math"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/spectre/pkg/eigensolver"
)

func harmonic(x []float64) float64 {
	v := 0.0
	for _, xi := range x {
		v += 0.5 * xi * xi
	}
	return v
}

func zero([]float64) float64 { return 0 }

func halves(n int) []float64 {
	k := make([]float64, n)
	for i := range k {
		k[i] = -0.5
	}
	return k
}

func sums(lists ...[]float64) []float64 {
	out := []float64{0}
	for _, l := range lists {
		next := make([]float64, 0, len(out)*len(l))
		for _, a := range out {
			for _, b := range l {
				next = append(next, a+b)
			}
		}
		out = next
	}
	sort.Float64s(out)
	return out
}

var _ = Describe("Solve", func() {
	Context("free particle in 1-D", func() {
		It("reproduces (2πn/L)² on a period of 2π", func() {
			vals, err := eigensolver.Eigenvalues(eigensolver.Problem{
				Potential: zero,
				N:         []int{32},
				Domain:    [][]float64{{0, 2 * math.Pi}},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(vals).To(HaveLen(32))

			expected := []float64{0, 1, 1, 4, 4, 9, 9, 16}
			for i, e := range expected {
				Expect(vals[i]).To(BeNumerically("~", e, 1e-8))
			}
		})

		It("rescales to an arbitrary domain length", func() {
			l := 4.0
			vals, err := eigensolver.Eigenvalues(eigensolver.Problem{
				Potential: zero,
				N:         []int{16},
				Domain:    [][]float64{{-1, -1 + l}},
			})
			Expect(err).NotTo(HaveOccurred())

			k := 2 * math.Pi / l
			Expect(vals[0]).To(BeNumerically("~", 0, 1e-9))
			Expect(vals[1]).To(BeNumerically("~", k*k, 1e-9))
			Expect(vals[2]).To(BeNumerically("~", k*k, 1e-9))
			Expect(vals[3]).To(BeNumerically("~", 4*k*k, 1e-9))
		})
	})

	Context("harmonic oscillator in 1-D", func() {
		var sol *eigensolver.Solution

		BeforeEach(func() {
			var err error
			sol, err = eigensolver.Solve(eigensolver.Problem{
				Potential: harmonic,
				N:         []int{48},
				Domain:    [][]float64{{-10, 10}},
				KDiag:     []float64{-0.5},
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("approximates n + 1/2", func() {
			for n := 0; n < 5; n++ {
				Expect(sol.Values[n]).To(BeNumerically("~", float64(n)+0.5, 1e-8))
			}
		})

		It("returns sorted values, vectors and the 1-D axis", func() {
			Expect(sort.Float64sAreSorted(sol.Values)).To(BeTrue())
			Expect(sol.HasVectors()).To(BeTrue())

			r, c := sol.Vectors.Dims()
			Expect(r).To(Equal(48))
			Expect(c).To(Equal(48))

			axis := sol.Axis()
			Expect(axis).To(HaveLen(48))
			Expect(axis[47]).To(BeNumerically("~", 10, 1e-12))
			Expect(axis[0]).To(BeNumerically("~", -10+20.0/48, 1e-12))
		})

		It("pairs each column with its eigenvalue", func() {
			h, err := eigensolver.Hamiltonian(eigensolver.Problem{
				Potential: harmonic,
				N:         []int{48},
				Domain:    [][]float64{{-10, 10}},
				KDiag:     []float64{-0.5},
			})
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 6; i++ {
				psi := mat.NewVecDense(48, sol.State(i))
				var hpsi mat.VecDense
				hpsi.MulVec(h, psi)
				hpsi.AddScaledVec(&hpsi, -sol.Values[i], psi)
				Expect(mat.Norm(&hpsi, 2)).To(BeNumerically("<", 1e-8))
			}
		})

		It("keeps the assembled operator", func() {
			want, err := eigensolver.Hamiltonian(eigensolver.Problem{
				Potential: harmonic,
				N:         []int{48},
				Domain:    [][]float64{{-10, 10}},
				KDiag:     []float64{-0.5},
			})
			Expect(err).NotTo(HaveOccurred())

			h := sol.Hamiltonian()
			Expect(h).NotTo(BeNil())
			Expect(h.SymmetricDim()).To(Equal(48))
			Expect(mat.Equal(h, want)).To(BeTrue())
		})

		It("normalizes wavefunctions over the cell volume", func() {
			dens := sol.Density(0)
			total := 0.0
			for _, d := range dens {
				total += d
			}
			Expect(total * sol.CellVolume()).To(BeNumerically("~", 1, 1e-12))
		})
	})

	Context("values-only path", func() {
		It("matches the full decomposition and stays sorted", func() {
			p := eigensolver.Problem{
				Potential: func(x []float64) float64 { return x[0]*x[0]*x[0]*x[0] - 3*x[0]*x[0] },
				N:         []int{40},
				Domain:    [][]float64{{-5, 5}},
			}
			full, err := eigensolver.Solve(p)
			Expect(err).NotTo(HaveOccurred())
			vals, err := eigensolver.Eigenvalues(p)
			Expect(err).NotTo(HaveOccurred())

			Expect(sort.Float64sAreSorted(vals)).To(BeTrue())
			Expect(sort.Float64sAreSorted(full.Values)).To(BeTrue())
			for i := range vals {
				Expect(vals[i]).To(BeNumerically("~", full.Values[i], 1e-9))
			}
		})

		It("omits vectors and grid", func() {
			sol, err := eigensolver.Solve(eigensolver.Problem{
				Potential: zero,
				N:         []int{8},
				Domain:    [][]float64{{0, 1}},
			}, eigensolver.ValuesOnly())
			Expect(err).NotTo(HaveOccurred())
			Expect(sol.HasVectors()).To(BeFalse())
			Expect(sol.Grid).To(BeNil())
			Expect(sol.State(0)).To(BeNil())
			Expect(sol.Hamiltonian()).To(BeNil())
		})
	})

	Context("separable problems", func() {
		It("gives the direct sum of 1-D spectra in 2-D", func() {
			oneD, err := eigensolver.Eigenvalues(eigensolver.Problem{
				Potential: harmonic,
				N:         []int{20},
				Domain:    [][]float64{{-8, 8}},
				KDiag:     []float64{-0.5},
			})
			Expect(err).NotTo(HaveOccurred())

			twoD, err := eigensolver.Solve(eigensolver.Problem{
				Potential: harmonic,
				N:         []int{20, 20},
				Domain:    [][]float64{{-8, 8}, {-8, 8}},
				KDiag:     halves(2),
				KCross:    []float64{0},
			}, eigensolver.WithStates(10))
			Expect(err).NotTo(HaveOccurred())
			Expect(twoD.Values).To(HaveLen(10))
			Expect(twoD.Grid).To(HaveLen(2))

			want := sums(oneD, oneD)
			for i, v := range twoD.Values {
				Expect(v).To(BeNumerically("~", want[i], 1e-8))
			}
			Expect(twoD.Values[0]).To(BeNumerically("~", 1, 1e-3))
		})

		It("handles anisotropic grids and domains in 3-D", func() {
			dims := []struct {
				n      int
				lo, hi float64
			}{{6, -5, 5}, {8, -6, 6}, {7, -5.5, 5.5}}

			p := eigensolver.Problem{Potential: harmonic, KDiag: halves(3)}
			var spectra [][]float64
			for _, d := range dims {
				vals, err := eigensolver.Eigenvalues(eigensolver.Problem{
					Potential: harmonic,
					N:         []int{d.n},
					Domain:    [][]float64{{d.lo, d.hi}},
					KDiag:     []float64{-0.5},
				})
				Expect(err).NotTo(HaveOccurred())
				spectra = append(spectra, vals)
				p.N = append(p.N, d.n)
				p.Domain = append(p.Domain, []float64{d.lo, d.hi})
			}

			vals, err := eigensolver.Eigenvalues(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(vals).To(HaveLen(6 * 8 * 7))

			want := sums(spectra...)
			for i := 0; i < 20; i++ {
				Expect(vals[i]).To(BeNumerically("~", want[i], 1e-8))
			}
		})
	})

	Context("cross coupling", func() {
		It("keeps H symmetric and shifts the ground state", func() {
			c := 0.5
			p := eigensolver.Problem{
				Potential: harmonic,
				N:         []int{20, 20},
				Domain:    [][]float64{{-8, 8}, {-8, 8}},
				KDiag:     halves(2),
				KCross:    []float64{c},
			}
			h, err := eigensolver.Hamiltonian(p)
			Expect(err).NotTo(HaveOccurred())
			n := h.SymmetricDim()
			Expect(n).To(Equal(400))

			vals, err := eigensolver.Eigenvalues(p)
			Expect(err).NotTo(HaveOccurred())

			// normal-mode frequencies are sqrt(1 ± c)
			want := 0.5 * (math.Sqrt(1+c) + math.Sqrt(1-c))
			Expect(vals[0]).To(BeNumerically("~", want, 1e-3))
			Expect(vals[0]).NotTo(BeNumerically("~", 1, 1e-2))
		})

		It("places first derivatives in the paired slots in 3-D", func() {
			base := eigensolver.Problem{
				Potential: harmonic,
				N:         []int{6, 6, 6},
				Domain:    [][]float64{{-5, 5}, {-5, 5}, {-5, 5}},
				KDiag:     halves(3),
			}
			ref, err := eigensolver.Eigenvalues(base)
			Expect(err).NotTo(HaveOccurred())

			for j := 0; j < 3; j++ {
				p := base
				p.KCross = make([]float64, 3)
				p.KCross[j] = 0.3
				vals, err := eigensolver.Eigenvalues(p)
				Expect(err).NotTo(HaveOccurred())
				Expect(sort.Float64sAreSorted(vals)).To(BeTrue())
				Expect(math.Abs(vals[0] - ref[0])).To(BeNumerically(">", 1e-4))
			}
		})
	})

	Context("validation", func() {
		one := func(lo, hi float64) [][]float64 { return [][]float64{{lo, hi}} }

		DescribeTable("rejects bad configuration before assembly",
			func(p eigensolver.Problem, opts []eigensolver.Option, want error) {
				called := false
				if p.Potential != nil {
					p.Potential = func(x []float64) float64 { called = true; return 0 }
				}
				_, err := eigensolver.Solve(p, opts...)
				Expect(errors.Is(err, want)).To(BeTrue(), "got %v", err)
				Expect(called).To(BeFalse())
			},
			Entry("four dimensions",
				eigensolver.Problem{Potential: zero, N: []int{4, 4, 4, 4}, Domain: [][]float64{{0, 1}, {0, 1}, {0, 1}, {0, 1}}},
				nil, eigensolver.ErrDimension),
			Entry("no dimensions",
				eigensolver.Problem{Potential: zero},
				nil, eigensolver.ErrDimension),
			Entry("domain count mismatch",
				eigensolver.Problem{Potential: zero, N: []int{4, 4}, Domain: one(0, 1)},
				nil, eigensolver.ErrDomainCount),
			Entry("single endpoint",
				eigensolver.Problem{Potential: zero, N: []int{4}, Domain: [][]float64{{0}}},
				nil, eigensolver.ErrDomainEndpoints),
			Entry("three endpoints",
				eigensolver.Problem{Potential: zero, N: []int{4}, Domain: [][]float64{{0, 1, 2}}},
				nil, eigensolver.ErrDomainEndpoints),
			Entry("reversed domain",
				eigensolver.Problem{Potential: zero, N: []int{4}, Domain: one(1, 0)},
				nil, eigensolver.ErrDomainOrder),
			Entry("one point",
				eigensolver.Problem{Potential: zero, N: []int{1}, Domain: one(0, 1)},
				nil, eigensolver.ErrGridSize),
			Entry("kdiag length",
				eigensolver.Problem{Potential: zero, N: []int{4}, Domain: one(0, 1), KDiag: []float64{-1, -1}},
				nil, eigensolver.ErrCoefficients),
			Entry("kcross length",
				eigensolver.Problem{Potential: zero, N: []int{4, 4}, Domain: [][]float64{{0, 1}, {0, 1}}, KCross: []float64{0, 0}},
				nil, eigensolver.ErrCoefficients),
			Entry("cross term on mixed parity",
				eigensolver.Problem{Potential: zero, N: []int{16, 15}, Domain: [][]float64{{-8, 8}, {-8, 8}}, KCross: []float64{0.5}},
				nil, eigensolver.ErrCrossParity),
			Entry("cross term on odd grids",
				eigensolver.Problem{Potential: zero, N: []int{6, 5, 5}, Domain: [][]float64{{0, 1}, {0, 1}, {0, 1}}, KCross: []float64{0, 0, 0.2}},
				nil, eigensolver.ErrCrossParity),
			Entry("nil potential",
				eigensolver.Problem{N: []int{4}, Domain: one(0, 1)},
				nil, eigensolver.ErrNilPotential),
			Entry("sparse path",
				eigensolver.Problem{Potential: zero, N: []int{4}, Domain: one(0, 1)},
				[]eigensolver.Option{eigensolver.WithSparse(true)}, eigensolver.ErrSparseUnsupported),
		)

		It("accepts odd grids when the cross term on them is zero", func() {
			vals, err := eigensolver.Eigenvalues(eigensolver.Problem{
				Potential: harmonic,
				N:         []int{16, 15},
				Domain:    [][]float64{{-8, 8}, {-8, 8}},
				KDiag:     halves(2),
				KCross:    []float64{0},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(vals[0]).To(BeNumerically("~", 1, 1e-3))
		})

		It("names the pair with the odd grid", func() {
			_, err := eigensolver.Solve(eigensolver.Problem{
				Potential: harmonic,
				N:         []int{6, 6, 5},
				Domain:    [][]float64{{-4, 4}, {-4, 4}, {-4, 4}},
				KCross:    []float64{0.1, 0, 0},
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = eigensolver.Solve(eigensolver.Problem{
				Potential: harmonic,
				N:         []int{6, 6, 5},
				Domain:    [][]float64{{-4, 4}, {-4, 4}, {-4, 4}},
				KCross:    []float64{0, 0.1, 0},
			})
			var cfgErr *eigensolver.ConfigError
			Expect(errors.As(err, &cfgErr)).To(BeTrue())
			Expect(cfgErr.Field).To(Equal("KCross"))
			Expect(cfgErr.Index).To(Equal(1))
			Expect(err).To(MatchError(eigensolver.ErrCrossParity))
		})

		It("checks dimensions before domains", func() {
			_, err := eigensolver.Solve(eigensolver.Problem{
				Potential: zero,
				N:         []int{4, 4, 4, 4},
				Domain:    [][]float64{{0}},
			})
			Expect(err).To(MatchError(eigensolver.ErrDimension))
		})

		It("reports the offending field", func() {
			_, err := eigensolver.Solve(eigensolver.Problem{
				Potential: zero,
				N:         []int{4, 4},
				Domain:    [][]float64{{0, 1}, {0}},
			})
			var cfgErr *eigensolver.ConfigError
			Expect(errors.As(err, &cfgErr)).To(BeTrue())
			Expect(cfgErr.Field).To(Equal("Domain"))
			Expect(cfgErr.Index).To(Equal(1))
		})
	})
})

var _ = Describe("Restore", func() {
	It("rebuilds the mesh from stored parts", func() {
		p := eigensolver.Problem{Potential: harmonic, N: []int{16}, Domain: [][]float64{{-6, 6}}, KDiag: halves(1)}
		sol, err := eigensolver.Solve(p, eigensolver.WithStates(3))
		Expect(err).NotTo(HaveOccurred())

		back, err := eigensolver.Restore(sol.Values, sol.Vectors, p.N, p.Domain)
		Expect(err).NotTo(HaveOccurred())
		Expect(back.Axis()).To(Equal(sol.Axis()))
		Expect(back.CellVolume()).To(BeNumerically("~", sol.CellVolume(), 1e-15))
		Expect(back.Density(1)).To(Equal(sol.Density(1)))
	})

	It("rejects vectors that do not fit the grid", func() {
		p := eigensolver.Problem{Potential: harmonic, N: []int{16}, Domain: [][]float64{{-6, 6}}, KDiag: halves(1)}
		sol, err := eigensolver.Solve(p, eigensolver.WithStates(3))
		Expect(err).NotTo(HaveOccurred())

		_, err = eigensolver.Restore(sol.Values, sol.Vectors, []int{15}, p.Domain)
		Expect(err).To(HaveOccurred())
	})

	It("accepts values without vectors", func() {
		back, err := eigensolver.Restore([]float64{1, 2}, nil, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(back.HasVectors()).To(BeFalse())
		Expect(back.Dims()).To(Equal(0))
	})
})
