// Package grid2tin builds an adaptive triangulated irregular network (TIN)
// from a regular elevation grid (DEM) via Garland and Heckbert's greedy
// insertion: start from the grid's four corners, then repeatedly insert
// whichever grid cell has the largest vertical error against the current
// mesh, until a vertex budget or error tolerance is reached.
package grid2tin
