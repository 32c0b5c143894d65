package address

import "github.com/btcsuite/btcd/chaincfg"

// Bitcoin-family altcoin network parameters. These coins share
// Bitcoin's P2PKH/P2SH address algorithm but use different version
// bytes; each is a ready-made "network collaborator" (chaincfg.Params)
// for the core's network-parametric serialization and address layers.

// LitecoinMainNetParams produces addresses starting with 'L'.
var LitecoinMainNetParams = chaincfg.Params{
	Name:             "litecoin_mainnet",
	PubKeyHashAddrID: 0x30,
	ScriptHashAddrID: 0x32,
	PrivateKeyID:     0xB0,
}

// DogecoinMainNetParams produces addresses starting with 'D'.
var DogecoinMainNetParams = chaincfg.Params{
	Name:             "dogecoin_mainnet",
	PubKeyHashAddrID: 0x1E,
	ScriptHashAddrID: 0x16,
	PrivateKeyID:     0x9E,
}

// DashMainNetParams produces addresses starting with 'X'.
var DashMainNetParams = chaincfg.Params{
	Name:             "dash_mainnet",
	PubKeyHashAddrID: 0x4C,
	ScriptHashAddrID: 0x10,
	PrivateKeyID:     0xCC,
}

// BitcoinCashMainNetParams uses Bitcoin Cash's legacy (non-CashAddr)
// address format, which is byte-compatible with Bitcoin's own.
var BitcoinCashMainNetParams = chaincfg.Params{
	Name:             "bitcoincash_mainnet",
	PubKeyHashAddrID: 0x00,
	ScriptHashAddrID: 0x05,
	PrivateKeyID:     0x80,
}

// ZcashMainNetParams carries only the first byte (0x1C) of Zcash's
// two-byte transparent address prefixes, for both P2PKH and P2SH,
// since chaincfg.Params holds a single version byte. Addresses encoded
// with it do not start with "t1"/"t3".
var ZcashMainNetParams = chaincfg.Params{
	Name:             "zcash_mainnet",
	PubKeyHashAddrID: 0x1C,
	ScriptHashAddrID: 0x1C,
	PrivateKeyID:     0x80,
}
