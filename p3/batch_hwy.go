package p3

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Batch plane classification and bounds kernels.
// Containment tests classify one point against every face plane, and bounds
// updates scan every vertex coordinate. Both reduce to streaming arithmetic
// over SoA slices, which vectorizes well once the polyhedron has enough
// faces or vertices to amortize the gather.

// BaseSignedDistanceBatch computes the signed distance of a constant point P
// against a set of planes (normals and offsets in SoA layout).
// dst[i] = P.X * nx[i] + P.Y * ny[i] + P.Z * nz[i] - off[i]
func BaseSignedDistanceBatch[T hwy.Floats](
	px, py, pz T,
	nx, ny, nz []T,
	off []T,
	dst []T,
) {
	size := min(len(nx), len(ny), len(nz), len(off), len(dst))

	vPx := hwy.Set(px)
	vPy := hwy.Set(py)
	vPz := hwy.Set(pz)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vNx := hwy.Load(nx[offset:])
			vNy := hwy.Load(ny[offset:])
			vNz := hwy.Load(nz[offset:])
			vOff := hwy.Load(off[offset:])

			// FMA: (px * nx) + (py * ny) + (pz * nz) - off
			dot := hwy.Mul(vPx, vNx)
			dot = hwy.FMA(vPy, vNy, dot)
			dot = hwy.FMA(vPz, vNz, dot)

			hwy.Store(hwy.Sub(dot, vOff), dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vNx := hwy.MaskLoad(mask, nx[offset:])
			vNy := hwy.MaskLoad(mask, ny[offset:])
			vNz := hwy.MaskLoad(mask, nz[offset:])
			vOff := hwy.MaskLoad(mask, off[offset:])

			dot := hwy.Mul(vPx, vNx)
			dot = hwy.FMA(vPy, vNy, dot)
			dot = hwy.FMA(vPz, vNz, dot)

			hwy.MaskStore(mask, hwy.Sub(dot, vOff), dst[offset:])
		},
	)
}

// BaseBatchCrossProduct computes the cross product of two sets of vectors
// (SoA layout). Used by the Newell plane fit, which sums the cross products
// of consecutive boundary positions.
// cx = ay*bz - az*by
// cy = az*bx - ax*bz
// cz = ax*by - ay*bx
func BaseBatchCrossProduct[T hwy.Floats](
	ax, ay, az []T,
	bx, by, bz []T,
	cx, cy, cz []T,
) {
	size := min(len(ax), len(ay), len(az), len(bx), len(by), len(bz))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vAx := hwy.Load(ax[offset:])
			vAy := hwy.Load(ay[offset:])
			vAz := hwy.Load(az[offset:])

			vBx := hwy.Load(bx[offset:])
			vBy := hwy.Load(by[offset:])
			vBz := hwy.Load(bz[offset:])

			vCx := hwy.Sub(hwy.Mul(vAy, vBz), hwy.Mul(vAz, vBy))
			vCy := hwy.Sub(hwy.Mul(vAz, vBx), hwy.Mul(vAx, vBz))
			vCz := hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx))

			hwy.Store(vCx, cx[offset:])
			hwy.Store(vCy, cy[offset:])
			hwy.Store(vCz, cz[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			vAx := hwy.MaskLoad(mask, ax[offset:])
			vAy := hwy.MaskLoad(mask, ay[offset:])
			vAz := hwy.MaskLoad(mask, az[offset:])
			vBx := hwy.MaskLoad(mask, bx[offset:])
			vBy := hwy.MaskLoad(mask, by[offset:])
			vBz := hwy.MaskLoad(mask, bz[offset:])

			vCx := hwy.Sub(hwy.Mul(vAy, vBz), hwy.Mul(vAz, vBy))
			vCy := hwy.Sub(hwy.Mul(vAz, vBx), hwy.Mul(vAx, vBz))
			vCz := hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx))

			hwy.MaskStore(mask, vCx, cx[offset:])
			hwy.MaskStore(mask, vCy, cy[offset:])
			hwy.MaskStore(mask, vCz, cz[offset:])
		},
	)
}

// BaseSumPoints computes the vector sum of a list of coordinates.
// Input is de-interleaved (separate slices for X, Y, Z coordinates).
// Returns the sum X, Y, Z.
func BaseSumPoints[T hwy.Floats](xs, ys, zs []T) (sumX, sumY, sumZ T) {
	size := min(len(xs), len(ys), len(zs))

	vSumX := hwy.Zero[T]()
	vSumY := hwy.Zero[T]()
	vSumZ := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vx := hwy.Load(xs[offset:])
			vy := hwy.Load(ys[offset:])
			vz := hwy.Load(zs[offset:])

			vSumX = hwy.Add(vSumX, vx)
			vSumY = hwy.Add(vSumY, vy)
			vSumZ = hwy.Add(vSumZ, vz)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vx := hwy.MaskLoad(mask, xs[offset:])
			vy := hwy.MaskLoad(mask, ys[offset:])
			vz := hwy.MaskLoad(mask, zs[offset:])

			vSumX = hwy.Add(vSumX, vx)
			vSumY = hwy.Add(vSumY, vy)
			vSumZ = hwy.Add(vSumZ, vz)
		},
	)

	return hwy.ReduceSum(vSumX), hwy.ReduceSum(vSumY), hwy.ReduceSum(vSumZ)
}

// BaseBatchMinMax computes the minimum and maximum values in a slice.
// Used for computing the bounding box of one coordinate axis.
func BaseBatchMinMax[T hwy.Floats](data []T) (minVal, maxVal T) {
	if len(data) == 0 {
		return 0, 0
	}

	// Seed with the first value so zero-padding from masked loads never
	// leaks into the reduction.
	initial := data[0]
	vMin := hwy.Set(initial)
	vMax := hwy.Set(initial)

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])

			vMinSafe := hwy.IfThenElse(mask, v, vMin)
			vMaxSafe := hwy.IfThenElse(mask, v, vMax)

			vMin = hwy.Min(vMin, vMinSafe)
			vMax = hwy.Max(vMax, vMaxSafe)
		},
	)

	return hwy.ReduceMin(vMin), hwy.ReduceMax(vMax)
}
