package revshare

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common"
)

const offeringDataSize = 2*common.AddressLength + 4 + 1 // issuer(20) + token(20) + bps(4) + status(1)

// SerializeOffering encodes an Offering to its fixed binary layout.
func SerializeOffering(o *Offering) []byte {
	buf := make([]byte, offeringDataSize)
	copy(buf[0:20], o.Issuer[:])
	copy(buf[20:40], o.Token[:])
	binary.BigEndian.PutUint32(buf[40:44], o.RevenueShareBps)
	buf[44] = byte(o.Status)
	return buf
}

// DeserializeOffering decodes binary data into an Offering.
func DeserializeOffering(data []byte) (*Offering, error) {
	if len(data) != offeringDataSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidOfferingData, offeringDataSize, len(data))
	}
	o := &Offering{}
	copy(o.Issuer[:], data[0:20])
	copy(o.Token[:], data[20:40])
	o.RevenueShareBps = binary.BigEndian.Uint32(data[40:44])
	o.Status = OfferingStatus(data[44])
	if o.RevenueShareBps > MaxBps || !o.Status.valid() {
		return nil, fmt.Errorf("%w: bps=%d status=%d", ErrInvalidOfferingData, o.RevenueShareBps, data[44])
	}
	return o, nil
}

// SerializeAddressList encodes an address list as count(4) + n*address(20).
func SerializeAddressList(addrs []common.Address) ([]byte, error) {
	if len(addrs) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d entries", ErrInvalidAddressList, len(addrs))
	}
	buf := make([]byte, 4+common.AddressLength*len(addrs))
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(addrs)))
	offset := 4
	for _, addr := range addrs {
		copy(buf[offset:offset+common.AddressLength], addr[:])
		offset += common.AddressLength
	}
	return buf, nil
}

// DeserializeAddressList decodes binary data into an address list.
func DeserializeAddressList(data []byte) ([]common.Address, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: too short (%d bytes)", ErrInvalidAddressList, len(data))
	}
	count := int(binary.BigEndian.Uint32(data[0:4]))
	expected := 4 + common.AddressLength*count
	if len(data) != expected {
		return nil, fmt.Errorf("%w: expected %d bytes for %d entries, got %d",
			ErrInvalidAddressList, expected, count, len(data))
	}
	addrs := make([]common.Address, count)
	offset := 4
	for i := 0; i < count; i++ {
		copy(addrs[i][:], data[offset:offset+common.AddressLength])
		offset += common.AddressLength
	}
	return addrs, nil
}
