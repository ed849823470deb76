// Package transform holds the pixel-map encoders behind the conversion
// commands. Each encoder registers itself by name at init time; the
// engine resolves one through New and applies it to the shared pixel
// buffer. Encoders produce the full text of the output file, header
// included, and nothing else; file handling and telemetry belong to the
// engine.
package transform
