// Package httpapi exposes the calculation engine over a single HTTP
// endpoint: POST runs a calculation, OPTIONS answers CORS preflight,
// every other method is rejected. All failures are classified exactly
// once here, carrying the elapsed wall-clock time of the attempt.
package httpapi
