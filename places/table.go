// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package places

import "github.com/jcodagnone/invitemap/spatial"

// builtin is the static place table. Keys are matched exactly, so spelling
// and case here define what the invite list must use.
var builtin = map[string]spatial.Point{
	"Mumbra":       {Lat: 19.1984, Lng: 73.1745},
	"Sewri":        {Lat: 19.013, Lng: 72.8442},
	"Nalasopara":   {Lat: 19.3675, Lng: 72.7824},
	"Kurla":        {Lat: 19.0731, Lng: 72.8786},
	"Dockyard":     {Lat: 18.9584, Lng: 72.8462},
	"Kharepatan":   {Lat: 16.9592, Lng: 73.6489},
	"Thane":        {Lat: 19.2183, Lng: 72.9781},
	"Rajapur":      {Lat: 16.873, Lng: 73.6562},
	"Gothne":       {Lat: 18.9628, Lng: 73.636},
	"Seawoods":     {Lat: 19.0357, Lng: 73.1088},
	"Lanja":        {Lat: 16.7981, Lng: 73.6906},
	"Koparkhairne": {Lat: 19.1108, Lng: 73.0568},
	"Ratnagiri":    {Lat: 16.9956, Lng: 73.3104},
	"Govandi":      {Lat: 19.071, Lng: 72.9054},
	"Worli":        {Lat: 18.9927, Lng: 72.8283},
	"Virar":        {Lat: 19.4635, Lng: 72.8376},
	"Kharghar":     {Lat: 19.0321, Lng: 73.0677},
	"Kamothe":      {Lat: 19.03, Lng: 73.0977},
	"Andheri":      {Lat: 19.11, Lng: 72.8504},
	"Mazgaon":      {Lat: 18.9985, Lng: 72.8369},
	"Chembur":      {Lat: 19.0666, Lng: 72.8956},
	"Vashi":        {Lat: 19.078, Lng: 72.9185},
	"Dammam":       {Lat: 26.4207, Lng: 50.0888},
	"Rahima":       {Lat: 26.4186, Lng: 50.1001},
	"Sanpada":      {Lat: 19.0586, Lng: 73.0179},
	"Mahim":        {Lat: 19.0376, Lng: 72.8434},
	"Ulwe":         {Lat: 19.0148, Lng: 73.008},
	"Panvel":       {Lat: 18.9865, Lng: 73.135},
	"Powai":        {Lat: 19.118, Lng: 72.8954},
	"Versova":      {Lat: 19.1, Lng: 72.8291},
	"Girye":        {Lat: 16.9745, Lng: 73.4881},
	"Devgad":       {Lat: 16.9527, Lng: 73.511},
	"Padel":        {Lat: 16.8594, Lng: 73.6516},
	"Taloja":       {Lat: 19.1754, Lng: 73.1246},
	"Vikhroli":     {Lat: 19.1282, Lng: 72.9294},
	"MiraRoad":     {Lat: 19.2932, Lng: 72.8555},
	"Nerul":        {Lat: 19.0275, Lng: 73.0114},
	"Byculla":      {Lat: 18.9958, Lng: 72.8392},
	"Dongar":       {Lat: 18.9495, Lng: 72.8375},
	"Badlapur":     {Lat: 19.6682, Lng: 73.2565},
	"Santacruz":    {Lat: 19.0602, Lng: 72.8347},
	"Talgaon":      {Lat: 19.0834, Lng: 73.2676},
	"Pune":         {Lat: 18.5204, Lng: 73.8567},
	"Sangli":       {Lat: 16.8557, Lng: 74.5763},
	"Nagpada":      {Lat: 19.014, Lng: 72.8413},
	"Kankavli":     {Lat: 16.5803, Lng: 73.6285},
}
