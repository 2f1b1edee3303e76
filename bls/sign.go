package bls

import (
	"errors"

	"github.com/kysee/bls12-381/curve"
	"github.com/kysee/bls12-381/pairing"
)

// SigDST is the domain separation tag for the
// BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_ ciphersuite's message
// signatures.
const SigDST = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"

// PopDST is the domain separation tag used for proof-of-possession
// signatures under the same ciphersuite.
const PopDST = "BLS_POP_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"

var ErrLengthMismatch = errors.New("bls: public key and message slices must have equal length")

func hashMessage(msg []byte, dst string) (*curve.G2, error) {
	return curve.HashToCurveG2(msg, []byte(dst))
}

// Sign computes sk * H(msg, SigDST).
func Sign(sk *SecretKey, msg []byte) (*Signature, error) {
	h, err := hashMessage(msg, SigDST)
	if err != nil {
		return nil, err
	}
	var sig curve.G2
	sig.MulScalar(h, sk.limbs[:])
	return &Signature{point: sig}, nil
}

// Verify checks e(-G1_generator, sig) * e(pk, H(msg, SigDST)) == 1,
// rejecting pk or sig outside the prime-order subgroup.
func Verify(pk *PublicKey, msg []byte, sig *Signature) (bool, error) {
	if !pk.point.InCorrectSubgroup() {
		return false, curve.ErrNotInSubgroup
	}
	if !sig.point.InCorrectSubgroup() {
		return false, curve.ErrNotInSubgroup
	}
	hm, err := hashMessage(msg, SigDST)
	if err != nil {
		return false, err
	}
	var negG1 curve.G1
	negG1.Neg(curve.G1Generator())
	return pairing.MultiPairing(
		[]*curve.G1{&negG1, &pk.point},
		[]*curve.G2{&sig.point, hm},
	), nil
}

// AggregateSignatures sums signatures in G2.
func AggregateSignatures(sigs []*Signature) (*Signature, error) {
	if len(sigs) == 0 {
		return nil, errors.New("bls: cannot aggregate zero signatures")
	}
	acc := curve.NewG2().Zero()
	for _, s := range sigs {
		acc.Add(acc, &s.point)
	}
	return &Signature{point: *acc}, nil
}

// AggregateVerify checks one multi-pairing against distinct messages
// per signer: e(-G1_generator, sig) * prod_i e(pk_i, H(msg_i)) == 1.
// Callers MUST ensure the messages are distinct; aggregate signatures
// over repeated messages are forgeable (rogue-message attacks), which
// this POP ciphersuite's per-signer key validation does not by itself
// prevent; combine with PopVerify at key-registration time.
func AggregateVerify(pks []*PublicKey, msgs [][]byte, sig *Signature) (bool, error) {
	if len(pks) != len(msgs) {
		return false, ErrLengthMismatch
	}
	if !sig.point.InCorrectSubgroup() {
		return false, curve.ErrNotInSubgroup
	}
	g1s := make([]*curve.G1, 0, len(pks)+1)
	g2s := make([]*curve.G2, 0, len(pks)+1)

	var negG1 curve.G1
	negG1.Neg(curve.G1Generator())
	g1s = append(g1s, &negG1)
	g2s = append(g2s, &sig.point)

	for i, pk := range pks {
		if !pk.point.InCorrectSubgroup() {
			return false, curve.ErrNotInSubgroup
		}
		hm, err := hashMessage(msgs[i], SigDST)
		if err != nil {
			return false, err
		}
		g1s = append(g1s, &pk.point)
		g2s = append(g2s, hm)
	}
	return pairing.MultiPairing(g1s, g2s), nil
}

// PopProve signs the signer's own public key under the proof-of-
// possession domain, attesting knowledge of the secret key.
func PopProve(sk *SecretKey) (*Signature, error) {
	pk := sk.PublicKey()
	h, err := hashMessage(pk.ToCompressed(), PopDST)
	if err != nil {
		return nil, err
	}
	var sig curve.G2
	sig.MulScalar(h, sk.limbs[:])
	return &Signature{point: sig}, nil
}

// PopVerify checks a proof of possession produced by PopProve.
func PopVerify(pk *PublicKey, pop *Signature) (bool, error) {
	if !pk.point.InCorrectSubgroup() {
		return false, curve.ErrNotInSubgroup
	}
	if !pop.point.InCorrectSubgroup() {
		return false, curve.ErrNotInSubgroup
	}
	hm, err := hashMessage(pk.ToCompressed(), PopDST)
	if err != nil {
		return false, err
	}
	var negG1 curve.G1
	negG1.Neg(curve.G1Generator())
	return pairing.MultiPairing(
		[]*curve.G1{&negG1, &pk.point},
		[]*curve.G2{&pop.point, hm},
	), nil
}
