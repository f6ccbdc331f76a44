package ecmalex

// The two fold tables below are transcriptions of the simple case-folding
// rules from the Unicode Character Database, split into the "unicode" table
// (canonicalization via Simple Case Folding, used when the u flag is set)
// and the legacy table (canonicalization via toUpperCase, Annex B mode).
// Entries are sorted ascending and pairwise disjoint; foldTableWellFormed
// checks this invariant in tests.

// Small equivalence classes referenced by direct entries. A direct entry
// maps its whole range to one of these fixed sets, e.g. the class of 'K',
// 'k' and the Kelvin sign.
var foldEquivalences = []*CodePointSet{
	pointSet(0x00b5, 0x039c, 0x03bc),
	rangeSet(CodePointRange{0x01c4, 0x01c6}),
	rangeSet(CodePointRange{0x01c7, 0x01c9}),
	rangeSet(CodePointRange{0x01ca, 0x01cc}),
	rangeSet(CodePointRange{0x01f1, 0x01f3}),
	pointSet(0x0345, 0x0399, 0x03b9, 0x1fbe),
	pointSet(0x0392, 0x03b2, 0x03d0),
	pointSet(0x0395, 0x03b5, 0x03f5),
	pointSet(0x0398, 0x03b8, 0x03d1),
	pointSet(0x039a, 0x03ba, 0x03f0),
	pointSet(0x03a0, 0x03c0, 0x03d6),
	pointSet(0x03a1, 0x03c1, 0x03f1),
	rangeSet(CodePointRange{0x03a3, 0x03a3}, CodePointRange{0x03c2, 0x03c3}),
	pointSet(0x03a6, 0x03c6, 0x03d5),
	pointSet(0x0412, 0x0432, 0x1c80),
	pointSet(0x0414, 0x0434, 0x1c81),
	pointSet(0x041e, 0x043e, 0x1c82),
	pointSet(0x0421, 0x0441, 0x1c83),
	rangeSet(CodePointRange{0x0422, 0x0422}, CodePointRange{0x0442, 0x0442}, CodePointRange{0x1c84, 0x1c85}),
	pointSet(0x042a, 0x044a, 0x1c86),
	rangeSet(CodePointRange{0x0462, 0x0463}, CodePointRange{0x1c87, 0x1c87}),
	rangeSet(CodePointRange{0x1c88, 0x1c88}, CodePointRange{0xa64a, 0xa64b}),
	rangeSet(CodePointRange{0x1e60, 0x1e61}, CodePointRange{0x1e9b, 0x1e9b}),
	pointSet(0x004b, 0x006b, 0x212a),
	pointSet(0x0053, 0x0073, 0x017f),
	pointSet(0x00c5, 0x00e5, 0x212b),
	pointSet(0x0398, 0x03b8, 0x03d1, 0x03f4),
	pointSet(0x03a9, 0x03c9, 0x2126),
}

var nonUnicodeFoldTable = []caseFoldEntry{
	deltaP(0x0041, 0x005a, 0x0020),
	deltaN(0x0061, 0x007a, 0x0020),
	direct(0x00b5, 0x00b5, 0x0000),
	deltaP(0x00c0, 0x00d6, 0x0020),
	deltaP(0x00d8, 0x00de, 0x0020),
	deltaN(0x00e0, 0x00f6, 0x0020),
	deltaN(0x00f8, 0x00fe, 0x0020),
	deltaP(0x00ff, 0x00ff, 0x0079),
	altAL(0x0100, 0x012f),
	altAL(0x0132, 0x0137),
	altUL(0x0139, 0x0148),
	altAL(0x014a, 0x0177),
	deltaN(0x0178, 0x0178, 0x0079),
	altUL(0x0179, 0x017e),
	deltaP(0x0180, 0x0180, 0x00c3),
	deltaP(0x0181, 0x0181, 0x00d2),
	altAL(0x0182, 0x0185),
	deltaP(0x0186, 0x0186, 0x00ce),
	altUL(0x0187, 0x0188),
	deltaP(0x0189, 0x018a, 0x00cd),
	altUL(0x018b, 0x018c),
	deltaP(0x018e, 0x018e, 0x004f),
	deltaP(0x018f, 0x018f, 0x00ca),
	deltaP(0x0190, 0x0190, 0x00cb),
	altUL(0x0191, 0x0192),
	deltaP(0x0193, 0x0193, 0x00cd),
	deltaP(0x0194, 0x0194, 0x00cf),
	deltaP(0x0195, 0x0195, 0x0061),
	deltaP(0x0196, 0x0196, 0x00d3),
	deltaP(0x0197, 0x0197, 0x00d1),
	altAL(0x0198, 0x0199),
	deltaP(0x019a, 0x019a, 0x00a3),
	deltaP(0x019c, 0x019c, 0x00d3),
	deltaP(0x019d, 0x019d, 0x00d5),
	deltaP(0x019e, 0x019e, 0x0082),
	deltaP(0x019f, 0x019f, 0x00d6),
	altAL(0x01a0, 0x01a5),
	deltaP(0x01a6, 0x01a6, 0x00da),
	altUL(0x01a7, 0x01a8),
	deltaP(0x01a9, 0x01a9, 0x00da),
	altAL(0x01ac, 0x01ad),
	deltaP(0x01ae, 0x01ae, 0x00da),
	altUL(0x01af, 0x01b0),
	deltaP(0x01b1, 0x01b2, 0x00d9),
	altUL(0x01b3, 0x01b6),
	deltaP(0x01b7, 0x01b7, 0x00db),
	altAL(0x01b8, 0x01b9),
	altAL(0x01bc, 0x01bd),
	deltaP(0x01bf, 0x01bf, 0x0038),
	direct(0x01c4, 0x01c6, 0x0001),
	direct(0x01c7, 0x01c9, 0x0002),
	direct(0x01ca, 0x01cc, 0x0003),
	altUL(0x01cd, 0x01dc),
	deltaN(0x01dd, 0x01dd, 0x004f),
	altAL(0x01de, 0x01ef),
	direct(0x01f1, 0x01f3, 0x0004),
	altAL(0x01f4, 0x01f5),
	deltaN(0x01f6, 0x01f6, 0x0061),
	deltaN(0x01f7, 0x01f7, 0x0038),
	altAL(0x01f8, 0x021f),
	deltaN(0x0220, 0x0220, 0x0082),
	altAL(0x0222, 0x0233),
	deltaP(0x023a, 0x023a, 0x2a2b),
	altUL(0x023b, 0x023c),
	deltaN(0x023d, 0x023d, 0x00a3),
	deltaP(0x023e, 0x023e, 0x2a28),
	deltaP(0x023f, 0x0240, 0x2a3f),
	altUL(0x0241, 0x0242),
	deltaN(0x0243, 0x0243, 0x00c3),
	deltaP(0x0244, 0x0244, 0x0045),
	deltaP(0x0245, 0x0245, 0x0047),
	altAL(0x0246, 0x024f),
	deltaP(0x0250, 0x0250, 0x2a1f),
	deltaP(0x0251, 0x0251, 0x2a1c),
	deltaP(0x0252, 0x0252, 0x2a1e),
	deltaN(0x0253, 0x0253, 0x00d2),
	deltaN(0x0254, 0x0254, 0x00ce),
	deltaN(0x0256, 0x0257, 0x00cd),
	deltaN(0x0259, 0x0259, 0x00ca),
	deltaN(0x025b, 0x025b, 0x00cb),
	deltaP(0x025c, 0x025c, 0xa54f),
	deltaN(0x0260, 0x0260, 0x00cd),
	deltaP(0x0261, 0x0261, 0xa54b),
	deltaN(0x0263, 0x0263, 0x00cf),
	deltaP(0x0265, 0x0265, 0xa528),
	deltaP(0x0266, 0x0266, 0xa544),
	deltaN(0x0268, 0x0268, 0x00d1),
	deltaN(0x0269, 0x0269, 0x00d3),
	deltaP(0x026a, 0x026a, 0xa544),
	deltaP(0x026b, 0x026b, 0x29f7),
	deltaP(0x026c, 0x026c, 0xa541),
	deltaN(0x026f, 0x026f, 0x00d3),
	deltaP(0x0271, 0x0271, 0x29fd),
	deltaN(0x0272, 0x0272, 0x00d5),
	deltaN(0x0275, 0x0275, 0x00d6),
	deltaP(0x027d, 0x027d, 0x29e7),
	deltaN(0x0280, 0x0280, 0x00da),
	deltaN(0x0283, 0x0283, 0x00da),
	deltaP(0x0287, 0x0287, 0xa52a),
	deltaN(0x0288, 0x0288, 0x00da),
	deltaN(0x0289, 0x0289, 0x0045),
	deltaN(0x028a, 0x028b, 0x00d9),
	deltaN(0x028c, 0x028c, 0x0047),
	deltaN(0x0292, 0x0292, 0x00db),
	deltaP(0x029d, 0x029d, 0xa515),
	deltaP(0x029e, 0x029e, 0xa512),
	direct(0x0345, 0x0345, 0x0005),
	altAL(0x0370, 0x0373),
	altAL(0x0376, 0x0377),
	deltaP(0x037b, 0x037d, 0x0082),
	deltaP(0x037f, 0x037f, 0x0074),
	deltaP(0x0386, 0x0386, 0x0026),
	deltaP(0x0388, 0x038a, 0x0025),
	deltaP(0x038c, 0x038c, 0x0040),
	deltaP(0x038e, 0x038f, 0x003f),
	deltaP(0x0391, 0x0391, 0x0020),
	direct(0x0392, 0x0392, 0x0006),
	deltaP(0x0393, 0x0394, 0x0020),
	direct(0x0395, 0x0395, 0x0007),
	deltaP(0x0396, 0x0397, 0x0020),
	direct(0x0398, 0x0398, 0x0008),
	direct(0x0399, 0x0399, 0x0005),
	direct(0x039a, 0x039a, 0x0009),
	deltaP(0x039b, 0x039b, 0x0020),
	direct(0x039c, 0x039c, 0x0000),
	deltaP(0x039d, 0x039f, 0x0020),
	direct(0x03a0, 0x03a0, 0x000a),
	direct(0x03a1, 0x03a1, 0x000b),
	direct(0x03a3, 0x03a3, 0x000c),
	deltaP(0x03a4, 0x03a5, 0x0020),
	direct(0x03a6, 0x03a6, 0x000d),
	deltaP(0x03a7, 0x03ab, 0x0020),
	deltaN(0x03ac, 0x03ac, 0x0026),
	deltaN(0x03ad, 0x03af, 0x0025),
	deltaN(0x03b1, 0x03b1, 0x0020),
	direct(0x03b2, 0x03b2, 0x0006),
	deltaN(0x03b3, 0x03b4, 0x0020),
	direct(0x03b5, 0x03b5, 0x0007),
	deltaN(0x03b6, 0x03b7, 0x0020),
	direct(0x03b8, 0x03b8, 0x0008),
	direct(0x03b9, 0x03b9, 0x0005),
	direct(0x03ba, 0x03ba, 0x0009),
	deltaN(0x03bb, 0x03bb, 0x0020),
	direct(0x03bc, 0x03bc, 0x0000),
	deltaN(0x03bd, 0x03bf, 0x0020),
	direct(0x03c0, 0x03c0, 0x000a),
	direct(0x03c1, 0x03c1, 0x000b),
	direct(0x03c2, 0x03c3, 0x000c),
	deltaN(0x03c4, 0x03c5, 0x0020),
	direct(0x03c6, 0x03c6, 0x000d),
	deltaN(0x03c7, 0x03cb, 0x0020),
	deltaN(0x03cc, 0x03cc, 0x0040),
	deltaN(0x03cd, 0x03ce, 0x003f),
	deltaP(0x03cf, 0x03cf, 0x0008),
	direct(0x03d0, 0x03d0, 0x0006),
	direct(0x03d1, 0x03d1, 0x0008),
	direct(0x03d5, 0x03d5, 0x000d),
	direct(0x03d6, 0x03d6, 0x000a),
	deltaN(0x03d7, 0x03d7, 0x0008),
	altAL(0x03d8, 0x03ef),
	direct(0x03f0, 0x03f0, 0x0009),
	direct(0x03f1, 0x03f1, 0x000b),
	deltaP(0x03f2, 0x03f2, 0x0007),
	deltaN(0x03f3, 0x03f3, 0x0074),
	direct(0x03f5, 0x03f5, 0x0007),
	altUL(0x03f7, 0x03f8),
	deltaN(0x03f9, 0x03f9, 0x0007),
	altAL(0x03fa, 0x03fb),
	deltaN(0x03fd, 0x03ff, 0x0082),
	deltaP(0x0400, 0x040f, 0x0050),
	deltaP(0x0410, 0x0411, 0x0020),
	direct(0x0412, 0x0412, 0x000e),
	deltaP(0x0413, 0x0413, 0x0020),
	direct(0x0414, 0x0414, 0x000f),
	deltaP(0x0415, 0x041d, 0x0020),
	direct(0x041e, 0x041e, 0x0010),
	deltaP(0x041f, 0x0420, 0x0020),
	direct(0x0421, 0x0421, 0x0011),
	direct(0x0422, 0x0422, 0x0012),
	deltaP(0x0423, 0x0429, 0x0020),
	direct(0x042a, 0x042a, 0x0013),
	deltaP(0x042b, 0x042f, 0x0020),
	deltaN(0x0430, 0x0431, 0x0020),
	direct(0x0432, 0x0432, 0x000e),
	deltaN(0x0433, 0x0433, 0x0020),
	direct(0x0434, 0x0434, 0x000f),
	deltaN(0x0435, 0x043d, 0x0020),
	direct(0x043e, 0x043e, 0x0010),
	deltaN(0x043f, 0x0440, 0x0020),
	direct(0x0441, 0x0441, 0x0011),
	direct(0x0442, 0x0442, 0x0012),
	deltaN(0x0443, 0x0449, 0x0020),
	direct(0x044a, 0x044a, 0x0013),
	deltaN(0x044b, 0x044f, 0x0020),
	deltaN(0x0450, 0x045f, 0x0050),
	altAL(0x0460, 0x0461),
	direct(0x0462, 0x0463, 0x0014),
	altAL(0x0464, 0x0481),
	altAL(0x048a, 0x04bf),
	deltaP(0x04c0, 0x04c0, 0x000f),
	altUL(0x04c1, 0x04ce),
	deltaN(0x04cf, 0x04cf, 0x000f),
	altAL(0x04d0, 0x052f),
	deltaP(0x0531, 0x0556, 0x0030),
	deltaN(0x0561, 0x0586, 0x0030),
	deltaP(0x10a0, 0x10c5, 0x1c60),
	deltaP(0x10c7, 0x10c7, 0x1c60),
	deltaP(0x10cd, 0x10cd, 0x1c60),
	deltaP(0x13a0, 0x13ef, 0x97d0),
	deltaP(0x13f0, 0x13f5, 0x0008),
	deltaN(0x13f8, 0x13fd, 0x0008),
	direct(0x1c80, 0x1c80, 0x000e),
	direct(0x1c81, 0x1c81, 0x000f),
	direct(0x1c82, 0x1c82, 0x0010),
	direct(0x1c83, 0x1c83, 0x0011),
	direct(0x1c84, 0x1c85, 0x0012),
	direct(0x1c86, 0x1c86, 0x0013),
	direct(0x1c87, 0x1c87, 0x0014),
	direct(0x1c88, 0x1c88, 0x0015),
	deltaP(0x1d79, 0x1d79, 0x8a04),
	deltaP(0x1d7d, 0x1d7d, 0x0ee6),
	altAL(0x1e00, 0x1e5f),
	direct(0x1e60, 0x1e61, 0x0016),
	altAL(0x1e62, 0x1e95),
	direct(0x1e9b, 0x1e9b, 0x0016),
	altAL(0x1ea0, 0x1eff),
	deltaP(0x1f00, 0x1f07, 0x0008),
	deltaN(0x1f08, 0x1f0f, 0x0008),
	deltaP(0x1f10, 0x1f15, 0x0008),
	deltaN(0x1f18, 0x1f1d, 0x0008),
	deltaP(0x1f20, 0x1f27, 0x0008),
	deltaN(0x1f28, 0x1f2f, 0x0008),
	deltaP(0x1f30, 0x1f37, 0x0008),
	deltaN(0x1f38, 0x1f3f, 0x0008),
	deltaP(0x1f40, 0x1f45, 0x0008),
	deltaN(0x1f48, 0x1f4d, 0x0008),
	deltaP(0x1f51, 0x1f51, 0x0008),
	deltaP(0x1f53, 0x1f53, 0x0008),
	deltaP(0x1f55, 0x1f55, 0x0008),
	deltaP(0x1f57, 0x1f57, 0x0008),
	deltaN(0x1f59, 0x1f59, 0x0008),
	deltaN(0x1f5b, 0x1f5b, 0x0008),
	deltaN(0x1f5d, 0x1f5d, 0x0008),
	deltaN(0x1f5f, 0x1f5f, 0x0008),
	deltaP(0x1f60, 0x1f67, 0x0008),
	deltaN(0x1f68, 0x1f6f, 0x0008),
	deltaP(0x1f70, 0x1f71, 0x004a),
	deltaP(0x1f72, 0x1f75, 0x0056),
	deltaP(0x1f76, 0x1f77, 0x0064),
	deltaP(0x1f78, 0x1f79, 0x0080),
	deltaP(0x1f7a, 0x1f7b, 0x0070),
	deltaP(0x1f7c, 0x1f7d, 0x007e),
	deltaP(0x1f80, 0x1f87, 0x0008),
	deltaN(0x1f88, 0x1f8f, 0x0008),
	deltaP(0x1f90, 0x1f97, 0x0008),
	deltaN(0x1f98, 0x1f9f, 0x0008),
	deltaP(0x1fa0, 0x1fa7, 0x0008),
	deltaN(0x1fa8, 0x1faf, 0x0008),
	deltaP(0x1fb0, 0x1fb1, 0x0008),
	deltaP(0x1fb3, 0x1fb3, 0x0009),
	deltaN(0x1fb8, 0x1fb9, 0x0008),
	deltaN(0x1fba, 0x1fbb, 0x004a),
	deltaN(0x1fbc, 0x1fbc, 0x0009),
	direct(0x1fbe, 0x1fbe, 0x0005),
	deltaP(0x1fc3, 0x1fc3, 0x0009),
	deltaN(0x1fc8, 0x1fcb, 0x0056),
	deltaN(0x1fcc, 0x1fcc, 0x0009),
	deltaP(0x1fd0, 0x1fd1, 0x0008),
	deltaN(0x1fd8, 0x1fd9, 0x0008),
	deltaN(0x1fda, 0x1fdb, 0x0064),
	deltaP(0x1fe0, 0x1fe1, 0x0008),
	deltaP(0x1fe5, 0x1fe5, 0x0007),
	deltaN(0x1fe8, 0x1fe9, 0x0008),
	deltaN(0x1fea, 0x1feb, 0x0070),
	deltaN(0x1fec, 0x1fec, 0x0007),
	deltaP(0x1ff3, 0x1ff3, 0x0009),
	deltaN(0x1ff8, 0x1ff9, 0x0080),
	deltaN(0x1ffa, 0x1ffb, 0x007e),
	deltaN(0x1ffc, 0x1ffc, 0x0009),
	deltaP(0x2132, 0x2132, 0x001c),
	deltaN(0x214e, 0x214e, 0x001c),
	deltaP(0x2160, 0x216f, 0x0010),
	deltaN(0x2170, 0x217f, 0x0010),
	altUL(0x2183, 0x2184),
	deltaP(0x24b6, 0x24cf, 0x001a),
	deltaN(0x24d0, 0x24e9, 0x001a),
	deltaP(0x2c00, 0x2c2e, 0x0030),
	deltaN(0x2c30, 0x2c5e, 0x0030),
	altAL(0x2c60, 0x2c61),
	deltaN(0x2c62, 0x2c62, 0x29f7),
	deltaN(0x2c63, 0x2c63, 0x0ee6),
	deltaN(0x2c64, 0x2c64, 0x29e7),
	deltaN(0x2c65, 0x2c65, 0x2a2b),
	deltaN(0x2c66, 0x2c66, 0x2a28),
	altUL(0x2c67, 0x2c6c),
	deltaN(0x2c6d, 0x2c6d, 0x2a1c),
	deltaN(0x2c6e, 0x2c6e, 0x29fd),
	deltaN(0x2c6f, 0x2c6f, 0x2a1f),
	deltaN(0x2c70, 0x2c70, 0x2a1e),
	altAL(0x2c72, 0x2c73),
	altUL(0x2c75, 0x2c76),
	deltaN(0x2c7e, 0x2c7f, 0x2a3f),
	altAL(0x2c80, 0x2ce3),
	altUL(0x2ceb, 0x2cee),
	altAL(0x2cf2, 0x2cf3),
	deltaN(0x2d00, 0x2d25, 0x1c60),
	deltaN(0x2d27, 0x2d27, 0x1c60),
	deltaN(0x2d2d, 0x2d2d, 0x1c60),
	altAL(0xa640, 0xa649),
	direct(0xa64a, 0xa64b, 0x0015),
	altAL(0xa64c, 0xa66d),
	altAL(0xa680, 0xa69b),
	altAL(0xa722, 0xa72f),
	altAL(0xa732, 0xa76f),
	altUL(0xa779, 0xa77c),
	deltaN(0xa77d, 0xa77d, 0x8a04),
	altAL(0xa77e, 0xa787),
	altUL(0xa78b, 0xa78c),
	deltaN(0xa78d, 0xa78d, 0xa528),
	altAL(0xa790, 0xa793),
	altAL(0xa796, 0xa7a9),
	deltaN(0xa7aa, 0xa7aa, 0xa544),
	deltaN(0xa7ab, 0xa7ab, 0xa54f),
	deltaN(0xa7ac, 0xa7ac, 0xa54b),
	deltaN(0xa7ad, 0xa7ad, 0xa541),
	deltaN(0xa7ae, 0xa7ae, 0xa544),
	deltaN(0xa7b0, 0xa7b0, 0xa512),
	deltaN(0xa7b1, 0xa7b1, 0xa52a),
	deltaN(0xa7b2, 0xa7b2, 0xa515),
	deltaP(0xa7b3, 0xa7b3, 0x03a0),
	altAL(0xa7b4, 0xa7b7),
	deltaN(0xab53, 0xab53, 0x03a0),
	deltaN(0xab70, 0xabbf, 0x97d0),
	deltaP(0xff21, 0xff3a, 0x0020),
	deltaN(0xff41, 0xff5a, 0x0020),
	deltaP(0x10400, 0x10427, 0x0028),
	deltaN(0x10428, 0x1044f, 0x0028),
	deltaP(0x104b0, 0x104d3, 0x0028),
	deltaN(0x104d8, 0x104fb, 0x0028),
	deltaP(0x10c80, 0x10cb2, 0x0040),
	deltaN(0x10cc0, 0x10cf2, 0x0040),
	deltaP(0x118a0, 0x118bf, 0x0020),
	deltaN(0x118c0, 0x118df, 0x0020),
	deltaP(0x1e900, 0x1e921, 0x0022),
	deltaN(0x1e922, 0x1e943, 0x0022),
}

var unicodeFoldTable = []caseFoldEntry{
	deltaP(0x0041, 0x004a, 0x0020),
	direct(0x004b, 0x004b, 0x0017),
	deltaP(0x004c, 0x0052, 0x0020),
	direct(0x0053, 0x0053, 0x0018),
	deltaP(0x0054, 0x005a, 0x0020),
	deltaN(0x0061, 0x006a, 0x0020),
	direct(0x006b, 0x006b, 0x0017),
	deltaN(0x006c, 0x0072, 0x0020),
	direct(0x0073, 0x0073, 0x0018),
	deltaN(0x0074, 0x007a, 0x0020),
	direct(0x00b5, 0x00b5, 0x0000),
	deltaP(0x00c0, 0x00c4, 0x0020),
	direct(0x00c5, 0x00c5, 0x0019),
	deltaP(0x00c6, 0x00d6, 0x0020),
	deltaP(0x00d8, 0x00de, 0x0020),
	deltaP(0x00df, 0x00df, 0x1dbf),
	deltaN(0x00e0, 0x00e4, 0x0020),
	direct(0x00e5, 0x00e5, 0x0019),
	deltaN(0x00e6, 0x00f6, 0x0020),
	deltaN(0x00f8, 0x00fe, 0x0020),
	deltaP(0x00ff, 0x00ff, 0x0079),
	altAL(0x0100, 0x012f),
	altAL(0x0132, 0x0137),
	altUL(0x0139, 0x0148),
	altAL(0x014a, 0x0177),
	deltaN(0x0178, 0x0178, 0x0079),
	altUL(0x0179, 0x017e),
	direct(0x017f, 0x017f, 0x0018),
	deltaP(0x0180, 0x0180, 0x00c3),
	deltaP(0x0181, 0x0181, 0x00d2),
	altAL(0x0182, 0x0185),
	deltaP(0x0186, 0x0186, 0x00ce),
	altUL(0x0187, 0x0188),
	deltaP(0x0189, 0x018a, 0x00cd),
	altUL(0x018b, 0x018c),
	deltaP(0x018e, 0x018e, 0x004f),
	deltaP(0x018f, 0x018f, 0x00ca),
	deltaP(0x0190, 0x0190, 0x00cb),
	altUL(0x0191, 0x0192),
	deltaP(0x0193, 0x0193, 0x00cd),
	deltaP(0x0194, 0x0194, 0x00cf),
	deltaP(0x0195, 0x0195, 0x0061),
	deltaP(0x0196, 0x0196, 0x00d3),
	deltaP(0x0197, 0x0197, 0x00d1),
	altAL(0x0198, 0x0199),
	deltaP(0x019a, 0x019a, 0x00a3),
	deltaP(0x019c, 0x019c, 0x00d3),
	deltaP(0x019d, 0x019d, 0x00d5),
	deltaP(0x019e, 0x019e, 0x0082),
	deltaP(0x019f, 0x019f, 0x00d6),
	altAL(0x01a0, 0x01a5),
	deltaP(0x01a6, 0x01a6, 0x00da),
	altUL(0x01a7, 0x01a8),
	deltaP(0x01a9, 0x01a9, 0x00da),
	altAL(0x01ac, 0x01ad),
	deltaP(0x01ae, 0x01ae, 0x00da),
	altUL(0x01af, 0x01b0),
	deltaP(0x01b1, 0x01b2, 0x00d9),
	altUL(0x01b3, 0x01b6),
	deltaP(0x01b7, 0x01b7, 0x00db),
	altAL(0x01b8, 0x01b9),
	altAL(0x01bc, 0x01bd),
	deltaP(0x01bf, 0x01bf, 0x0038),
	direct(0x01c4, 0x01c6, 0x0001),
	direct(0x01c7, 0x01c9, 0x0002),
	direct(0x01ca, 0x01cc, 0x0003),
	altUL(0x01cd, 0x01dc),
	deltaN(0x01dd, 0x01dd, 0x004f),
	altAL(0x01de, 0x01ef),
	direct(0x01f1, 0x01f3, 0x0004),
	altAL(0x01f4, 0x01f5),
	deltaN(0x01f6, 0x01f6, 0x0061),
	deltaN(0x01f7, 0x01f7, 0x0038),
	altAL(0x01f8, 0x021f),
	deltaN(0x0220, 0x0220, 0x0082),
	altAL(0x0222, 0x0233),
	deltaP(0x023a, 0x023a, 0x2a2b),
	altUL(0x023b, 0x023c),
	deltaN(0x023d, 0x023d, 0x00a3),
	deltaP(0x023e, 0x023e, 0x2a28),
	deltaP(0x023f, 0x0240, 0x2a3f),
	altUL(0x0241, 0x0242),
	deltaN(0x0243, 0x0243, 0x00c3),
	deltaP(0x0244, 0x0244, 0x0045),
	deltaP(0x0245, 0x0245, 0x0047),
	altAL(0x0246, 0x024f),
	deltaP(0x0250, 0x0250, 0x2a1f),
	deltaP(0x0251, 0x0251, 0x2a1c),
	deltaP(0x0252, 0x0252, 0x2a1e),
	deltaN(0x0253, 0x0253, 0x00d2),
	deltaN(0x0254, 0x0254, 0x00ce),
	deltaN(0x0256, 0x0257, 0x00cd),
	deltaN(0x0259, 0x0259, 0x00ca),
	deltaN(0x025b, 0x025b, 0x00cb),
	deltaP(0x025c, 0x025c, 0xa54f),
	deltaN(0x0260, 0x0260, 0x00cd),
	deltaP(0x0261, 0x0261, 0xa54b),
	deltaN(0x0263, 0x0263, 0x00cf),
	deltaP(0x0265, 0x0265, 0xa528),
	deltaP(0x0266, 0x0266, 0xa544),
	deltaN(0x0268, 0x0268, 0x00d1),
	deltaN(0x0269, 0x0269, 0x00d3),
	deltaP(0x026a, 0x026a, 0xa544),
	deltaP(0x026b, 0x026b, 0x29f7),
	deltaP(0x026c, 0x026c, 0xa541),
	deltaN(0x026f, 0x026f, 0x00d3),
	deltaP(0x0271, 0x0271, 0x29fd),
	deltaN(0x0272, 0x0272, 0x00d5),
	deltaN(0x0275, 0x0275, 0x00d6),
	deltaP(0x027d, 0x027d, 0x29e7),
	deltaN(0x0280, 0x0280, 0x00da),
	deltaN(0x0283, 0x0283, 0x00da),
	deltaP(0x0287, 0x0287, 0xa52a),
	deltaN(0x0288, 0x0288, 0x00da),
	deltaN(0x0289, 0x0289, 0x0045),
	deltaN(0x028a, 0x028b, 0x00d9),
	deltaN(0x028c, 0x028c, 0x0047),
	deltaN(0x0292, 0x0292, 0x00db),
	deltaP(0x029d, 0x029d, 0xa515),
	deltaP(0x029e, 0x029e, 0xa512),
	direct(0x0345, 0x0345, 0x0005),
	altAL(0x0370, 0x0373),
	altAL(0x0376, 0x0377),
	deltaP(0x037b, 0x037d, 0x0082),
	deltaP(0x037f, 0x037f, 0x0074),
	deltaP(0x0386, 0x0386, 0x0026),
	deltaP(0x0388, 0x038a, 0x0025),
	deltaP(0x038c, 0x038c, 0x0040),
	deltaP(0x038e, 0x038f, 0x003f),
	deltaP(0x0391, 0x0391, 0x0020),
	direct(0x0392, 0x0392, 0x0006),
	deltaP(0x0393, 0x0394, 0x0020),
	direct(0x0395, 0x0395, 0x0007),
	deltaP(0x0396, 0x0397, 0x0020),
	direct(0x0398, 0x0398, 0x001a),
	direct(0x0399, 0x0399, 0x0005),
	direct(0x039a, 0x039a, 0x0009),
	deltaP(0x039b, 0x039b, 0x0020),
	direct(0x039c, 0x039c, 0x0000),
	deltaP(0x039d, 0x039f, 0x0020),
	direct(0x03a0, 0x03a0, 0x000a),
	direct(0x03a1, 0x03a1, 0x000b),
	direct(0x03a3, 0x03a3, 0x000c),
	deltaP(0x03a4, 0x03a5, 0x0020),
	direct(0x03a6, 0x03a6, 0x000d),
	deltaP(0x03a7, 0x03a8, 0x0020),
	direct(0x03a9, 0x03a9, 0x001b),
	deltaP(0x03aa, 0x03ab, 0x0020),
	deltaN(0x03ac, 0x03ac, 0x0026),
	deltaN(0x03ad, 0x03af, 0x0025),
	deltaN(0x03b1, 0x03b1, 0x0020),
	direct(0x03b2, 0x03b2, 0x0006),
	deltaN(0x03b3, 0x03b4, 0x0020),
	direct(0x03b5, 0x03b5, 0x0007),
	deltaN(0x03b6, 0x03b7, 0x0020),
	direct(0x03b8, 0x03b8, 0x001a),
	direct(0x03b9, 0x03b9, 0x0005),
	direct(0x03ba, 0x03ba, 0x0009),
	deltaN(0x03bb, 0x03bb, 0x0020),
	direct(0x03bc, 0x03bc, 0x0000),
	deltaN(0x03bd, 0x03bf, 0x0020),
	direct(0x03c0, 0x03c0, 0x000a),
	direct(0x03c1, 0x03c1, 0x000b),
	direct(0x03c2, 0x03c3, 0x000c),
	deltaN(0x03c4, 0x03c5, 0x0020),
	direct(0x03c6, 0x03c6, 0x000d),
	deltaN(0x03c7, 0x03c8, 0x0020),
	direct(0x03c9, 0x03c9, 0x001b),
	deltaN(0x03ca, 0x03cb, 0x0020),
	deltaN(0x03cc, 0x03cc, 0x0040),
	deltaN(0x03cd, 0x03ce, 0x003f),
	deltaP(0x03cf, 0x03cf, 0x0008),
	direct(0x03d0, 0x03d0, 0x0006),
	direct(0x03d1, 0x03d1, 0x001a),
	direct(0x03d5, 0x03d5, 0x000d),
	direct(0x03d6, 0x03d6, 0x000a),
	deltaN(0x03d7, 0x03d7, 0x0008),
	altAL(0x03d8, 0x03ef),
	direct(0x03f0, 0x03f0, 0x0009),
	direct(0x03f1, 0x03f1, 0x000b),
	deltaP(0x03f2, 0x03f2, 0x0007),
	deltaN(0x03f3, 0x03f3, 0x0074),
	direct(0x03f4, 0x03f4, 0x001a),
	direct(0x03f5, 0x03f5, 0x0007),
	altUL(0x03f7, 0x03f8),
	deltaN(0x03f9, 0x03f9, 0x0007),
	altAL(0x03fa, 0x03fb),
	deltaN(0x03fd, 0x03ff, 0x0082),
	deltaP(0x0400, 0x040f, 0x0050),
	deltaP(0x0410, 0x0411, 0x0020),
	direct(0x0412, 0x0412, 0x000e),
	deltaP(0x0413, 0x0413, 0x0020),
	direct(0x0414, 0x0414, 0x000f),
	deltaP(0x0415, 0x041d, 0x0020),
	direct(0x041e, 0x041e, 0x0010),
	deltaP(0x041f, 0x0420, 0x0020),
	direct(0x0421, 0x0421, 0x0011),
	direct(0x0422, 0x0422, 0x0012),
	deltaP(0x0423, 0x0429, 0x0020),
	direct(0x042a, 0x042a, 0x0013),
	deltaP(0x042b, 0x042f, 0x0020),
	deltaN(0x0430, 0x0431, 0x0020),
	direct(0x0432, 0x0432, 0x000e),
	deltaN(0x0433, 0x0433, 0x0020),
	direct(0x0434, 0x0434, 0x000f),
	deltaN(0x0435, 0x043d, 0x0020),
	direct(0x043e, 0x043e, 0x0010),
	deltaN(0x043f, 0x0440, 0x0020),
	direct(0x0441, 0x0441, 0x0011),
	direct(0x0442, 0x0442, 0x0012),
	deltaN(0x0443, 0x0449, 0x0020),
	direct(0x044a, 0x044a, 0x0013),
	deltaN(0x044b, 0x044f, 0x0020),
	deltaN(0x0450, 0x045f, 0x0050),
	altAL(0x0460, 0x0461),
	direct(0x0462, 0x0463, 0x0014),
	altAL(0x0464, 0x0481),
	altAL(0x048a, 0x04bf),
	deltaP(0x04c0, 0x04c0, 0x000f),
	altUL(0x04c1, 0x04ce),
	deltaN(0x04cf, 0x04cf, 0x000f),
	altAL(0x04d0, 0x052f),
	deltaP(0x0531, 0x0556, 0x0030),
	deltaN(0x0561, 0x0586, 0x0030),
	deltaP(0x10a0, 0x10c5, 0x1c60),
	deltaP(0x10c7, 0x10c7, 0x1c60),
	deltaP(0x10cd, 0x10cd, 0x1c60),
	deltaP(0x13a0, 0x13ef, 0x97d0),
	deltaP(0x13f0, 0x13f5, 0x0008),
	deltaN(0x13f8, 0x13fd, 0x0008),
	direct(0x1c80, 0x1c80, 0x000e),
	direct(0x1c81, 0x1c81, 0x000f),
	direct(0x1c82, 0x1c82, 0x0010),
	direct(0x1c83, 0x1c83, 0x0011),
	direct(0x1c84, 0x1c85, 0x0012),
	direct(0x1c86, 0x1c86, 0x0013),
	direct(0x1c87, 0x1c87, 0x0014),
	direct(0x1c88, 0x1c88, 0x0015),
	deltaP(0x1d79, 0x1d79, 0x8a04),
	deltaP(0x1d7d, 0x1d7d, 0x0ee6),
	altAL(0x1e00, 0x1e5f),
	direct(0x1e60, 0x1e61, 0x0016),
	altAL(0x1e62, 0x1e95),
	direct(0x1e9b, 0x1e9b, 0x0016),
	deltaN(0x1e9e, 0x1e9e, 0x1dbf),
	altAL(0x1ea0, 0x1eff),
	deltaP(0x1f00, 0x1f07, 0x0008),
	deltaN(0x1f08, 0x1f0f, 0x0008),
	deltaP(0x1f10, 0x1f15, 0x0008),
	deltaN(0x1f18, 0x1f1d, 0x0008),
	deltaP(0x1f20, 0x1f27, 0x0008),
	deltaN(0x1f28, 0x1f2f, 0x0008),
	deltaP(0x1f30, 0x1f37, 0x0008),
	deltaN(0x1f38, 0x1f3f, 0x0008),
	deltaP(0x1f40, 0x1f45, 0x0008),
	deltaN(0x1f48, 0x1f4d, 0x0008),
	deltaP(0x1f51, 0x1f51, 0x0008),
	deltaP(0x1f53, 0x1f53, 0x0008),
	deltaP(0x1f55, 0x1f55, 0x0008),
	deltaP(0x1f57, 0x1f57, 0x0008),
	deltaN(0x1f59, 0x1f59, 0x0008),
	deltaN(0x1f5b, 0x1f5b, 0x0008),
	deltaN(0x1f5d, 0x1f5d, 0x0008),
	deltaN(0x1f5f, 0x1f5f, 0x0008),
	deltaP(0x1f60, 0x1f67, 0x0008),
	deltaN(0x1f68, 0x1f6f, 0x0008),
	deltaP(0x1f70, 0x1f71, 0x004a),
	deltaP(0x1f72, 0x1f75, 0x0056),
	deltaP(0x1f76, 0x1f77, 0x0064),
	deltaP(0x1f78, 0x1f79, 0x0080),
	deltaP(0x1f7a, 0x1f7b, 0x0070),
	deltaP(0x1f7c, 0x1f7d, 0x007e),
	deltaP(0x1f80, 0x1f87, 0x0008),
	deltaN(0x1f88, 0x1f8f, 0x0008),
	deltaP(0x1f90, 0x1f97, 0x0008),
	deltaN(0x1f98, 0x1f9f, 0x0008),
	deltaP(0x1fa0, 0x1fa7, 0x0008),
	deltaN(0x1fa8, 0x1faf, 0x0008),
	deltaP(0x1fb0, 0x1fb1, 0x0008),
	deltaP(0x1fb3, 0x1fb3, 0x0009),
	deltaN(0x1fb8, 0x1fb9, 0x0008),
	deltaN(0x1fba, 0x1fbb, 0x004a),
	deltaN(0x1fbc, 0x1fbc, 0x0009),
	direct(0x1fbe, 0x1fbe, 0x0005),
	deltaP(0x1fc3, 0x1fc3, 0x0009),
	deltaN(0x1fc8, 0x1fcb, 0x0056),
	deltaN(0x1fcc, 0x1fcc, 0x0009),
	deltaP(0x1fd0, 0x1fd1, 0x0008),
	deltaN(0x1fd8, 0x1fd9, 0x0008),
	deltaN(0x1fda, 0x1fdb, 0x0064),
	deltaP(0x1fe0, 0x1fe1, 0x0008),
	deltaP(0x1fe5, 0x1fe5, 0x0007),
	deltaN(0x1fe8, 0x1fe9, 0x0008),
	deltaN(0x1fea, 0x1feb, 0x0070),
	deltaN(0x1fec, 0x1fec, 0x0007),
	deltaP(0x1ff3, 0x1ff3, 0x0009),
	deltaN(0x1ff8, 0x1ff9, 0x0080),
	deltaN(0x1ffa, 0x1ffb, 0x007e),
	deltaN(0x1ffc, 0x1ffc, 0x0009),
	direct(0x2126, 0x2126, 0x001b),
	direct(0x212a, 0x212a, 0x0017),
	direct(0x212b, 0x212b, 0x0019),
	deltaP(0x2132, 0x2132, 0x001c),
	deltaN(0x214e, 0x214e, 0x001c),
	deltaP(0x2160, 0x216f, 0x0010),
	deltaN(0x2170, 0x217f, 0x0010),
	altUL(0x2183, 0x2184),
	deltaP(0x24b6, 0x24cf, 0x001a),
	deltaN(0x24d0, 0x24e9, 0x001a),
	deltaP(0x2c00, 0x2c2e, 0x0030),
	deltaN(0x2c30, 0x2c5e, 0x0030),
	altAL(0x2c60, 0x2c61),
	deltaN(0x2c62, 0x2c62, 0x29f7),
	deltaN(0x2c63, 0x2c63, 0x0ee6),
	deltaN(0x2c64, 0x2c64, 0x29e7),
	deltaN(0x2c65, 0x2c65, 0x2a2b),
	deltaN(0x2c66, 0x2c66, 0x2a28),
	altUL(0x2c67, 0x2c6c),
	deltaN(0x2c6d, 0x2c6d, 0x2a1c),
	deltaN(0x2c6e, 0x2c6e, 0x29fd),
	deltaN(0x2c6f, 0x2c6f, 0x2a1f),
	deltaN(0x2c70, 0x2c70, 0x2a1e),
	altAL(0x2c72, 0x2c73),
	altUL(0x2c75, 0x2c76),
	deltaN(0x2c7e, 0x2c7f, 0x2a3f),
	altAL(0x2c80, 0x2ce3),
	altUL(0x2ceb, 0x2cee),
	altAL(0x2cf2, 0x2cf3),
	deltaN(0x2d00, 0x2d25, 0x1c60),
	deltaN(0x2d27, 0x2d27, 0x1c60),
	deltaN(0x2d2d, 0x2d2d, 0x1c60),
	altAL(0xa640, 0xa649),
	direct(0xa64a, 0xa64b, 0x0015),
	altAL(0xa64c, 0xa66d),
	altAL(0xa680, 0xa69b),
	altAL(0xa722, 0xa72f),
	altAL(0xa732, 0xa76f),
	altUL(0xa779, 0xa77c),
	deltaN(0xa77d, 0xa77d, 0x8a04),
	altAL(0xa77e, 0xa787),
	altUL(0xa78b, 0xa78c),
	deltaN(0xa78d, 0xa78d, 0xa528),
	altAL(0xa790, 0xa793),
	altAL(0xa796, 0xa7a9),
	deltaN(0xa7aa, 0xa7aa, 0xa544),
	deltaN(0xa7ab, 0xa7ab, 0xa54f),
	deltaN(0xa7ac, 0xa7ac, 0xa54b),
	deltaN(0xa7ad, 0xa7ad, 0xa541),
	deltaN(0xa7ae, 0xa7ae, 0xa544),
	deltaN(0xa7b0, 0xa7b0, 0xa512),
	deltaN(0xa7b1, 0xa7b1, 0xa52a),
	deltaN(0xa7b2, 0xa7b2, 0xa515),
	deltaP(0xa7b3, 0xa7b3, 0x03a0),
	altAL(0xa7b4, 0xa7b7),
	deltaN(0xab53, 0xab53, 0x03a0),
	deltaN(0xab70, 0xabbf, 0x97d0),
	deltaP(0xff21, 0xff3a, 0x0020),
	deltaN(0xff41, 0xff5a, 0x0020),
	deltaP(0x10400, 0x10427, 0x0028),
	deltaN(0x10428, 0x1044f, 0x0028),
	deltaP(0x104b0, 0x104d3, 0x0028),
	deltaN(0x104d8, 0x104fb, 0x0028),
	deltaP(0x10c80, 0x10cb2, 0x0040),
	deltaN(0x10cc0, 0x10cf2, 0x0040),
	deltaP(0x118a0, 0x118bf, 0x0020),
	deltaN(0x118c0, 0x118df, 0x0020),
	deltaP(0x1e900, 0x1e921, 0x0022),
	deltaN(0x1e922, 0x1e943, 0x0022),
}
