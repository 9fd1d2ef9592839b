package common

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// LoadFEN replaces the board with the position encoded in fen and
// clears the history. The board is untouched when an error is
// returned.
func (b *Board) LoadFEN(fen string) error {
	var p, err = positionFromFEN(fen)
	if err != nil {
		return err
	}
	b.Position = p
	b.history = b.history[:0]
	return nil
}

func positionFromFEN(fen string) (Position, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) < 4 {
		return Position{}, fmt.Errorf("parse fen %q: want at least 4 fields, got %d", fen, len(tokens))
	}

	var p = Position{EpSquare: SquareNone, FullMove: 1}

	var ranks = strings.Split(tokens[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("parse fen %q: board field has %d ranks", fen, len(ranks))
	}
	for rankIndex, rank := range ranks {
		var file = 0
		for _, ch := range rank {
			if unicode.IsDigit(ch) {
				file += int(ch - '0')
				continue
			}
			var piece = parsePiece(ch)
			if piece.Type == Empty {
				return Position{}, fmt.Errorf("parse fen %q: bad piece %q", fen, ch)
			}
			if file > 7 {
				return Position{}, fmt.Errorf("parse fen %q: rank %d overflows", fen, 8-rankIndex)
			}
			xorPiece(&p, piece.Type, piece.Side, MakeSquare(file, 7-rankIndex))
			file++
		}
		if file != 8 {
			return Position{}, fmt.Errorf("parse fen %q: rank %d has %d files", fen, 8-rankIndex, file)
		}
	}

	switch tokens[1] {
	case "w":
		p.WhiteMove = true
	case "b":
		p.WhiteMove = false
	default:
		return Position{}, fmt.Errorf("parse fen %q: bad side %q", fen, tokens[1])
	}

	if tokens[2] != "-" {
		for _, ch := range tokens[2] {
			switch ch {
			case 'K':
				p.CastleRights |= WhiteKingSide
			case 'Q':
				p.CastleRights |= WhiteQueenSide
			case 'k':
				p.CastleRights |= BlackKingSide
			case 'q':
				p.CastleRights |= BlackQueenSide
			default:
				return Position{}, fmt.Errorf("parse fen %q: bad castling %q", fen, tokens[2])
			}
		}
	}

	var epSquare, err = ParseSquare(tokens[3])
	if err != nil {
		return Position{}, fmt.Errorf("parse fen %q: bad en passant: %v", fen, err)
	}
	p.EpSquare = epSquare

	if len(tokens) > 4 {
		p.Rule50, err = strconv.Atoi(tokens[4])
		if err != nil || p.Rule50 < 0 {
			return Position{}, fmt.Errorf("parse fen %q: bad halfmove clock %q", fen, tokens[4])
		}
	}
	if len(tokens) > 5 {
		p.FullMove, err = strconv.Atoi(tokens[5])
		if err != nil || p.FullMove < 1 {
			return Position{}, fmt.Errorf("parse fen %q: bad fullmove number %q", fen, tokens[5])
		}
	}

	p.Key = p.ComputeKey()
	return p, nil
}

// FEN emits the position in Forsyth-Edwards notation.
func (b *Board) FEN() string {
	var sb bytes.Buffer
	var p = &b.Position

	var emptyCount = 0
	for i := 0; i < 64; i++ {
		var sq = FlipSquare(i)
		var piece = p.WhatPiece(sq)
		if piece == Empty {
			emptyCount++
		} else {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			var pieceSide = (p.White & SquareMask[sq]) != 0
			sb.WriteString(pieceToChar(piece, pieceSide))
		}
		if File(sq) == FileH {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			if Rank(sq) != Rank1 {
				sb.WriteString("/")
			}
		}
	}
	sb.WriteString(" ")

	if p.WhiteMove {
		sb.WriteString("w")
	} else {
		sb.WriteString("b")
	}
	sb.WriteString(" ")

	if p.CastleRights == 0 {
		sb.WriteString("-")
	} else {
		if (p.CastleRights & WhiteKingSide) != 0 {
			sb.WriteString("K")
		}
		if (p.CastleRights & WhiteQueenSide) != 0 {
			sb.WriteString("Q")
		}
		if (p.CastleRights & BlackKingSide) != 0 {
			sb.WriteString("k")
		}
		if (p.CastleRights & BlackQueenSide) != 0 {
			sb.WriteString("q")
		}
	}
	sb.WriteString(" ")

	sb.WriteString(SquareName(p.EpSquare))
	sb.WriteString(" ")

	sb.WriteString(strconv.Itoa(p.Rule50))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.FullMove))

	return sb.String()
}

// String renders an ASCII diagram, rank 8 at the top.
func (b *Board) String() string {
	var sb bytes.Buffer
	for rank := Rank8; rank >= Rank1; rank-- {
		for file := FileA; file <= FileH; file++ {
			var piece, side = b.GetPieceTypeAndSide(MakeSquare(file, rank))
			if piece == Empty {
				sb.WriteString(". ")
			} else {
				sb.WriteString(pieceToChar(piece, side))
				sb.WriteString(" ")
			}
		}
		sb.WriteString(strconv.Itoa(rank + 1))
		sb.WriteString("\n")
	}
	sb.WriteString("a b c d e f g h")
	return sb.String()
}
