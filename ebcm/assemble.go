package ebcm

import (
	"runtime"
	"sync"

	"github.com/optforge/tmatrix/modes"
	"github.com/optforge/tmatrix/shape"
	"github.com/optforge/tmatrix/specfun"
)

// coupling holds the four surface-integral couplings of one
// (degree j, degree k, order m) triple, in the irregular (Hankel,
// J*) and regular (Bessel, Rg*) families.
type coupling struct {
	m                      int
	j11, j12, j21, j22     complex128
	rg11, rg12, rg21, rg22 complex128
}

// pairBlock collects the couplings of one degree pair. j is the
// source (column) degree, expanded in regular wavefunctions at the
// particle wavenumber; k is the response (row) degree, expanded at
// the medium wavenumber.
type pairBlock struct {
	j, k int
	vals []coupling
}

// radialTables caches the spherical Bessel/Hankel values every degree
// pair reads: j_n at the particle-side argument, j_n, y_n and h1_n at
// the medium-side argument, for n = 0..nmax at each boundary sample.
// Layout is [degree][sample]. Built once before the pair loop.
type radialTables struct {
	xp, xm []complex128 // k_particle*r, k_medium*r per sample
	jp     [][]complex128
	jm     [][]complex128
	hm     [][]complex128
}

func buildRadialTables(nmax int, r []float64, kMedium, kParticle complex128) *radialTables {
	np := len(r)
	t := &radialTables{
		xp: make([]complex128, np),
		xm: make([]complex128, np),
		jp: make([][]complex128, nmax+1),
		jm: make([][]complex128, nmax+1),
		hm: make([][]complex128, nmax+1),
	}
	for n := 0; n <= nmax; n++ {
		t.jp[n] = make([]complex128, np)
		t.jm[n] = make([]complex128, np)
		t.hm[n] = make([]complex128, np)
	}
	for i, ri := range r {
		t.xp[i] = kParticle * complex(ri, 0)
		t.xm[i] = kMedium * complex(ri, 0)
		jp := specfun.SphBesselJ(nmax, t.xp[i])
		jm := specfun.SphBesselJ(nmax, t.xm[i])
		ym := specfun.SphBesselY(nmax, t.xm[i])
		for n := 0; n <= nmax; n++ {
			t.jp[n][i] = jp[n]
			t.jm[n][i] = jm[n]
			t.hm[n][i] = jm[n] + 1i*ym[n]
		}
	}
	return t
}

// assembleCouplings runs the double loop over degree pairs. The pairs
// are independent: each one reads the shared tables and writes only
// its own pre-allocated slot, so they are statically partitioned over
// the available CPUs with no synchronization beyond the final wait.
func assembleCouplings(bd *shape.Boundary, sph []*specfun.Spharm, rad *radialTables, nmax int, mirror bool) []pairBlock {
	blocks := make([]pairBlock, 0, nmax*nmax)
	for j := 1; j <= nmax; j++ {
		for k := 1; k <= nmax; k++ {
			blocks = append(blocks, pairBlock{j: j, k: k})
		}
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(blocks) {
		workers = len(blocks)
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(blocks); i += workers {
				fillPair(&blocks[i], bd, sph, rad, mirror)
			}
		}(w)
	}
	wg.Wait()
	return blocks
}

// fillPair integrates the four coupling terms of one degree pair over
// the boundary, for every shared order m in [-min(j,k), min(j,k)].
//
// With z-mirror symmetry the integrands have definite parity under
// theta -> pi-theta, decided by the degree parity alone: the 12/21
// couplings vanish identically for opposite-parity pairs, the 11/22
// couplings for same-parity pairs. Those terms are skipped outright so
// the zeros are exact, and the work halves.
func fillPair(pb *pairBlock, bd *shape.Boundary, sph []*specfun.Spharm, rad *radialTables, mirror bool) {
	j, k := pb.j, pb.k
	samePar := (j+k)%2 == 0
	do1221 := !(mirror && !samePar)
	do1122 := !(mirror && samePar)

	p := j
	if k < p {
		p = k
	}
	cj := complex(float64(j)*float64(j+1), 0)
	ck := complex(float64(k)*float64(k+1), 0)
	norm := modes.PairNorm(j, k)

	pb.vals = make([]coupling, 0, 2*p+1)
	for m := -p; m <= p; m++ {
		yj, tj, fj := sph[j-1].Order(m)
		yk, tk, fk := sph[k-1].Order(-m)

		sgn := norm
		if m%2 != 0 {
			sgn = -norm
		}

		c := coupling{m: m}
		for i := range bd.R {
			ds := complex(sgn*bd.Area[i], 0)
			wr := ds * complex(bd.NormR[i], 0)
			wt := ds * complex(bd.NormTheta[i], 0)

			// Source-side radial factors at k_particle*r.
			jj := rad.jp[j][i]
			dj := specfun.RiccatiDeriv(j, rad.xp[i], rad.jp[j-1][i], jj)
			jjox := jj / rad.xp[i]

			// Response-side radial factors at k_medium*r: Hankel for
			// the irregular family, Bessel for the regular one.
			hk := rad.hm[k][i]
			dhk := specfun.RiccatiDeriv(k, rad.xm[i], rad.hm[k-1][i], hk)
			hkox := hk / rad.xm[i]
			bk := rad.jm[k][i]
			dbk := specfun.RiccatiDeriv(k, rad.xm[i], rad.jm[k-1][i], bk)
			bkox := bk / rad.xm[i]

			// Angular cross-products of the two harmonic triples.
			angC := tj[i]*fk[i] - fj[i]*tk[i]
			angB := fj[i]*fk[i] + tj[i]*tk[i]
			tjYk := tj[i] * yk[i]
			yjTk := yj[i] * tk[i]
			fjYk := fj[i] * yk[i]
			yjFk := yj[i] * fk[i]

			if do1122 {
				c.j11 += wr * jj * hk * angC
				c.rg11 += wr * jj * bk * angC
				c.j22 += wr*dj*dhk*angC + wt*(ck*dj*hkox*fjYk-cj*jjox*dhk*yjFk)
				c.rg22 += wr*dj*dbk*angC + wt*(ck*dj*bkox*fjYk-cj*jjox*dbk*yjFk)
			}
			if do1221 {
				c.j12 += wr*jj*dhk*angB - wt*ck*jj*hkox*tjYk
				c.rg12 += wr*jj*dbk*angB - wt*ck*jj*bkox*tjYk
				c.j21 += -wr*dj*hk*angB + wt*cj*jjox*hk*yjTk
				c.rg21 += -wr*dj*bk*angB + wt*cj*jjox*bk*yjTk
			}
		}
		pb.vals = append(pb.vals, c)
	}
}
