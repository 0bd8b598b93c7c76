package wallet

import (
	"encoding/binary"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ReceiveBranch is the conventional external/receive chain index used
// for address fan-out from the account xpub.
const ReceiveBranch uint32 = 0

// ChildPub performs non-hardened public child derivation (CKDpub):
// I = HMAC-SHA512(chainCode, parentPub || be32(index)),
// childPoint = IL*G + parentPoint, childChainCode = IR.
// Hardened indices are rejected with ErrHardenedPublicDerivation; an
// out-of-range IL or a child point at infinity fails with
// ErrScalarOutOfRange.
func ChildPub(parentPub, parentChainCode []byte, index uint32) (childPub, childChainCode []byte, err error) {
	if len(parentPub) != PubKeyLen {
		return nil, nil, fmt.Errorf("%w: public key must be %d bytes", ErrInvalidEncodingInput, PubKeyLen)
	}
	if len(parentChainCode) != ChainCodeLen {
		return nil, nil, fmt.Errorf("%w: chain code must be %d bytes", ErrInvalidEncodingInput, ChainCodeLen)
	}
	if index >= HardenedKeyStart {
		return nil, nil, fmt.Errorf("index %d: %w", index, ErrHardenedPublicDerivation)
	}

	parentKey, err := secp256k1.ParsePubKey(parentPub)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidEncodingInput, err)
	}

	var indexBytes [4]byte
	binary.BigEndian.PutUint32(indexBytes[:], index)

	sum := hmacSHA512(parentChainCode, parentPub, indexBytes[:])
	il := sum[:PrivKeyLen]
	childChainCode = sum[PrivKeyLen:]

	var ilScalar secp256k1.ModNScalar
	if overflow := ilScalar.SetByteSlice(il); overflow {
		return nil, nil, fmt.Errorf("derive child %d: %w", index, ErrScalarOutOfRange)
	}

	// childPoint = IL*G + parentPoint
	var ilPoint, parentPoint, childPoint secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&ilScalar, &ilPoint)
	parentKey.AsJacobian(&parentPoint)
	secp256k1.AddNonConst(&ilPoint, &parentPoint, &childPoint)
	ilScalar.Zero()

	if (childPoint.X.IsZero() && childPoint.Y.IsZero()) || childPoint.Z.IsZero() {
		return nil, nil, fmt.Errorf("derive child %d: point at infinity: %w", index, ErrScalarOutOfRange)
	}

	childPoint.ToAffine()
	childKey := secp256k1.NewPublicKey(&childPoint.X, &childPoint.Y)
	return childKey.SerializeCompressed(), childChainCode, nil
}

// ReceivePubKey derives the compressed public key for receive address
// number index from an account-level extended public key: two
// non-hardened hops, branch 0 then index.
func ReceivePubKey(account *ExtendedKey, index uint32) ([]byte, error) {
	if account.Private {
		return nil, fmt.Errorf("%w: expected an extended public key", ErrMalformedExtendedKey)
	}

	branchPub, branchChainCode, err := ChildPub(account.Key, account.ChainCode, ReceiveBranch)
	if err != nil {
		return nil, fmt.Errorf("derive receive branch: %w", err)
	}

	childPub, _, err := ChildPub(branchPub, branchChainCode, index)
	if err != nil {
		return nil, fmt.Errorf("derive address key: %w", err)
	}
	return childPub, nil
}
