// Package compress provides the compression registry used by LAR archives.
//
// Every entry header records a numeric algorithm id. A Registry maps those
// ids to a Codec that can compress a whole payload and decompress it back
// into a buffer of the known original length:
//
//	reg := compress.Default()
//	codec, err := reg.Lookup(compress.Zstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(data)
//
// Id 0 is reserved for uncompressed payloads. Id 2 (nrv2b) is reserved for
// compatibility with archives written by older tools and has no codec.
package compress
