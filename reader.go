package tjpeg

// JPEG marker codes recognized by Prepare.
const (
	markerSOI = 0xD8
	markerSOF0 = 0xC0
	markerDHT = 0xC4
	markerDQT = 0xDB
	markerDRI = 0xDD
	markerSOS = 0xDA
	markerEOI = 0xD9
	markerRST0 = 0xD0
	markerRST7 = 0xD7
)

// samplingFactor describes the first component's chroma subsampling; the
// remaining components are always fixed at 1x1.
type samplingFactor struct {
	h, v int
}

func (s samplingFactor) blocksWide() int { return s.h }
func (s samplingFactor) blocksHigh() int { return s.v }

var (
	sampling444 = samplingFactor{1, 1}
	sampling422 = samplingFactor{2, 1}
	sampling420 = samplingFactor{2, 2}
)

func samplingFromFactor(h, v uint8) (samplingFactor, bool) {
	switch {
	case h == 1 && v == 1:
		return sampling444, true
	case h == 2 && v == 1:
		return sampling422, true
	case h == 2 && v == 2:
		return sampling420, true
	default:
		return samplingFactor{}, false
	}
}

// Prepare parses a JPEG bitstream's headers (SOI through SOS) and
// populates the decoder's Huffman and quantization tables from pool. It
// must succeed before Decompress or any size query is called.
//
// tier selects the Huffman decode accelerator; pool must
// outlive the decoder.
func (d *Decoder) Prepare(data []byte, pool *Pool, tier Tier) error {
	if len(data) < 2 {
		return InputError("input shorter than the SOI marker")
	}
	if data[0] != 0xFF || data[1] != markerSOI {
		return FormatError("missing SOI marker")
	}

	d.tier = tier
	pos := 2
	for {
		if pos+4 > len(data) {
			return InputError("truncated marker segment header")
		}
		if data[pos] != 0xFF {
			return FormatError("expected marker prefix 0xFF")
		}
		kind := data[pos+1]
		length := int(data[pos+2])<<8 | int(data[pos+3])
		if length < 2 {
			return FormatError("marker segment length shorter than its own field")
		}

		segStart := pos + 4
		segLen := length - 2
		if segStart+segLen > len(data) {
			return InputError("marker segment runs past end of input")
		}
		seg := data[segStart : segStart+segLen]

		switch {
		case kind == markerSOF0:
			if err := d.parseSOF0(seg); err != nil {
				return err
			}
		case kind == markerDHT:
			if err := d.parseDHT(seg, pool); err != nil {
				return err
			}
		case kind == markerDQT:
			if err := d.parseDQT(seg, pool); err != nil {
				return err
			}
		case kind == markerDRI:
			if err := d.parseDRI(seg); err != nil {
				return err
			}
		case kind == markerSOS:
			if err := d.parseSOS(seg); err != nil {
				return err
			}
			d.sosPos = segStart + segLen
			logf("tjpeg: SOS at %d, entropy data starts at %d", pos, d.sosPos)
			return nil
		case kind == markerEOI:
			return FormatError("EOI marker before SOS")
		case kind >= 0xC0 && kind <= 0xCF:
			return UnsupportedStandardError("non-baseline SOF variant")
		}

		pos = segStart + segLen
	}
}

func (d *Decoder) parseSOF0(data []byte) error {
	if len(data) < 6 {
		return FormatError("SOF0 segment too short")
	}
	precision := data[0]
	if precision != 8 {
		return UnsupportedFormatError("only 8-bit sample precision is supported")
	}
	d.rawHeight = uint16(data[1])<<8 | uint16(data[2])
	d.rawWidth = uint16(data[3])<<8 | uint16(data[4])
	n := data[5]
	if n != 1 && n != 3 {
		return UnsupportedStandardError("only 1 or 3 component frames are supported")
	}
	d.numComponents = int(n)

	want := 6 + int(n)*3
	if len(data) < want {
		return FormatError("SOF0 segment shorter than its component count implies")
	}
	for i := 0; i < int(n); i++ {
		off := 6 + i*3
		hv := data[off+1]
		qid := data[off+2]
		if i == 0 {
			h, v := hv>>4, hv&0x0F
			sf, ok := samplingFromFactor(h, v)
			if !ok {
				return UnsupportedFormatError("unsupported luma sampling factor")
			}
			d.sampling = sf
		} else if hv != 0x11 {
			return UnsupportedFormatError("chroma components must use 1x1 sampling")
		}
		if qid > 3 {
			return FormatError("quantization table id out of range")
		}
		d.qtableIDs[i] = qid
	}
	return nil
}

func (d *Decoder) parseDHT(data []byte, pool *Pool) error {
	for len(data) > 0 {
		if len(data) < 17 {
			return FormatError("DHT sub-table shorter than its fixed header")
		}
		info := data[0]
		class := (info >> 4) & 0x01
		id := info & 0x0F
		if id > 1 {
			return FormatError("DHT table id out of range")
		}

		var bits [16]uint8
		copy(bits[:], data[1:17])
		numCodes := 0
		for _, c := range bits {
			numCodes += int(c)
		}
		if len(data) < 17+numCodes {
			return FormatError("DHT sub-table shorter than its symbol count implies")
		}
		values := data[17 : 17+numCodes]

		table, err := buildHuffmanTable(pool, bits, values, d.tier)
		if err != nil {
			return err
		}
		if class == 0 {
			d.huffDC[id] = table
		} else {
			d.huffAC[id] = table
		}

		data = data[17+numCodes:]
	}
	return nil
}

func (d *Decoder) parseDQT(data []byte, pool *Pool) error {
	for len(data) > 0 {
		info := data[0]
		precision := (info >> 4) & 0x0F
		id := info & 0x0F
		if id > 3 {
			return FormatError("DQT table id out of range")
		}

		qtable, err := pool.AllocI32(64)
		if err != nil {
			return err
		}

		if precision == 0 {
			if len(data) < 65 {
				return FormatError("8-bit DQT sub-table truncated")
			}
			for i := 0; i < 64; i++ {
				zi := zigzag[i]
				q := uint32(data[1+i])
				qtable[zi] = int32(q * uint32(araiScaleFactor[zi]))
			}
			data = data[65:]
		} else {
			if len(data) < 129 {
				return FormatError("16-bit DQT sub-table truncated")
			}
			for i := 0; i < 64; i++ {
				zi := zigzag[i]
				q := uint32(data[1+i*2])<<8 | uint32(data[2+i*2])
				qtable[zi] = int32(q * uint32(araiScaleFactor[zi]))
			}
			data = data[129:]
		}

		d.quant[id] = qtable
	}
	return nil
}

func (d *Decoder) parseDRI(data []byte) error {
	if len(data) < 2 {
		return FormatError("DRI segment too short")
	}
	d.restartInterval = uint16(data[0])<<8 | uint16(data[1])
	return nil
}

func (d *Decoder) parseSOS(data []byte) error {
	if len(data) < 1 {
		return FormatError("SOS segment too short")
	}
	if int(data[0]) != d.numComponents {
		return FormatError("SOS component count does not match SOF0")
	}
	for i := 0; i < d.numComponents; i++ {
		tableID := 0
		if i != 0 {
			tableID = 1
		}
		if d.huffDC[tableID] == nil || d.huffAC[tableID] == nil {
			return FormatError("SOS references an unpopulated Huffman table")
		}
		if d.quant[d.qtableIDs[i]] == nil {
			return FormatError("SOS references an unpopulated quantization table")
		}
	}
	return nil
}
